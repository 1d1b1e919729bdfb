package repository

import "errors"

// ErrNotFound marks a lookup by id that matched no row. Callers test for
// it with errors.Is; repositories wrap it with the entity name so the
// boundary can report which lookup missed.
var ErrNotFound = errors.New("not found")
