// Package logger provides a small factory over log/slog with functional
// options for format, level, output, and static attributes, plus attribute
// constructors used across the toolkit to keep key naming consistent.
//
// # Usage
//
//	import "github.com/sealkit/sealkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(slog.String("app", "sealkit")),
//	)
//	logger.SetAsDefault(log)
package logger
