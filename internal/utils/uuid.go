package utils

import "github.com/google/uuid"

// NewRequestID returns a UUID string for tagging outbound requests. V7 ids
// are time-ordered, which keeps correlated log lines adjacent when sorted;
// if v7 generation fails the id falls back to a random v4.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
