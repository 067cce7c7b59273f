package domain

import "errors"

// ErrDuplicateEmail is returned by UserRepository.Create when the email is
// already taken. Repository implementations translate the store's
// unique-constraint violation into this error so the logic layer never sees
// driver detail.
var ErrDuplicateEmail = errors.New("email already registered")
