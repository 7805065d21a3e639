package errors

import "errors"

// ErrNotFound is a generic sentinel for missing resources.
var ErrNotFound = errors.New("not found")
