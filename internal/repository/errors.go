// Package repository holds the in-memory stores owned by the service.  The
// sentinel errors defined here let handlers map storage failures onto the
// fixed wire responses without inspecting error strings.
package repository

import "errors"

// ErrEmailExists is returned when a registration targets an email that is
// already present in the store.  Handlers translate this into HTTP 400.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a lookup by email, id or content id matches
// nothing.  Handlers translate this into 401 or 404 depending on context.
var ErrNotFound = errors.New("not found")
