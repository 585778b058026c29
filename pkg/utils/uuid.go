package utils

import "github.com/google/uuid"

// GenerateUUID returns a random UUID v4 string, used for catalog row IDs.
func GenerateUUID() string {
	return uuid.NewString()
}
