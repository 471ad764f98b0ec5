package model

import "errors"

// ErrIsolatedLine is returned when a line with no linked neighbor is asked to
// unlink or relink. It signals a caller bug, not a recoverable condition.
var ErrIsolatedLine = errors.New("cannot unlink an isolated line")
