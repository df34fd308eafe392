package repl

import "errors"

// ErrOutOfBounds is returned for a history index out of range.
var ErrOutOfBounds = errors.New("index out of range")
