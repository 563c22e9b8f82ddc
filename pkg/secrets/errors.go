package secrets

import "errors"

// ErrRandomSource is returned when the system entropy source cannot be read.
var ErrRandomSource = errors.New("secrets: failed to read random source")
