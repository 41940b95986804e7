package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for persisted records. It prefers UUIDv7
// so that record IDs sort roughly by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 if the
// system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
