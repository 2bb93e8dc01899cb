// Package repository stores staff accounts and their refresh tokens.  The
// sentinel values below let handlers tell failure scenarios apart without
// inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that already has an
// account.  Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrInactiveUser is returned when a disabled account tries to authenticate.
// Handlers should translate this into an HTTP 403 response.
var ErrInactiveUser = errors.New("user is inactive")
