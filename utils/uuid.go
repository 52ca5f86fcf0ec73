package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string for items and bids
func GenerateID() string {
	return uuid.New().String()
}

// GenerateToken returns an opaque session token (a random UUID without dashes)
func GenerateToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
