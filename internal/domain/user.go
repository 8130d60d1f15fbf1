package domain

import "time"

// User represents an account in the system. The three color slots are
// client-side theming preferences stored verbatim.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Color1       string
	Color2       string
	Color3       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
