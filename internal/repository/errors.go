package repository

import "errors"

// ErrNotFound is returned when an update or delete touched zero rows, or a
// lookup matched nothing.
var ErrNotFound = errors.New("record not found")
