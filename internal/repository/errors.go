// Package repository contains data access logic separated from HTTP
// handlers.  This file defines sentinel errors reused across repositories
// so handlers can translate failure scenarios into HTTP statuses without
// inspecting driver errors.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot be performed because of
// conflicting state, such as deciding a booking that is no longer Pending.
// Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")
