package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, falling back to a random UUIDv4
// if the clock source fails. Used for peer and document identifiers.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsID reports whether s parses as a UUID.
func IsID(s string) bool {
	return uuid.Validate(s) == nil
}
