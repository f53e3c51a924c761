// Package repository implements the collection-scoped data access layer on
// top of MongoDB. Sentinel errors defined here let handlers distinguish
// failure scenarios without inspecting driver errors directly.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Handlers
// translate it into a 401 on login and into empty/null responses on
// singleton reads.
var ErrNotFound = errors.New("not found")
