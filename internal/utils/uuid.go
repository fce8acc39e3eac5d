// Package utils provides general-purpose helpers shared by the client and the
// stub server: the resty HTTP client wrapper, HTTP response writers, and
// UUID-based identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
