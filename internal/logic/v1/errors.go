// Package v1 holds the business logic for API version 1.
//
// Sentinel errors below are wrapped with context via fmt.Errorf("%w") when
// returned and checked with errors.Is in the web layer. The web layer maps
// them to HTTP statuses; wrapped detail is only ever logged server-side.
package v1

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable so the
	// login endpoint cannot be used to enumerate accounts.
	// HTTP status: 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is an internal lookup miss. It never reaches a client
	// as-is: login translates it into ErrInvalidCredentials.
	// HTTP status: 401.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists means the email is already registered.
	// HTTP status: 409.
	ErrUserExists = errors.New("user already exists")

	// ErrUnauthorized means the request carried no usable session token.
	// HTTP status: 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means a CRUD resource does not exist.
	// HTTP status: 404.
	ErrNotFound = errors.New("not found")

	// ErrInternal is an opaque wrapper for unexpected storage or
	// configuration failures. No internal detail leaks with it.
	// HTTP status: 500.
	ErrInternal = errors.New("internal error")
)
