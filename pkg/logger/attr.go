package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the subsystem emitting the record under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// TokenLength records a token's length under the key "token_length".
// Tokens themselves are never logged; the length is enough for diagnostics
// without leaking signed material.
func TokenLength(token string) slog.Attr {
	return slog.Int("token_length", len(token))
}
