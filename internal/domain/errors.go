package domain

import "errors"

var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the caller is not the owner of the entity.
	ErrForbidden = errors.New("access denied")
	// ErrConflict indicates a uniqueness violation (duplicate email or association).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is returned for any failed login. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers every token validation failure, whatever the cause.
	ErrInvalidToken = errors.New("invalid or expired token")
)
