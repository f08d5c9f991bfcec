package utils

import "github.com/google/uuid"

// GenerateID returns a new opaque identifier for users, habits, records and
// sessions.
func GenerateID() string {
	return uuid.New().String()
}
