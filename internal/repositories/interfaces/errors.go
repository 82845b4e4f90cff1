package interfaces

import "errors"

// ErrNotFound is returned by all repositories when the requested record does
// not exist, regardless of backing store.
var ErrNotFound = errors.New("record not found")
