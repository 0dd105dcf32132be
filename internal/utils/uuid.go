package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for SQL-backed entities.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4
// if the clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s is a UUID in the canonical lower-case
// 8-4-4-4-12 form the SQL stores write. Upper-case hex is rejected since
// ids are compared as text.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	parsed, err := uuid.Parse(s)
	return err == nil && parsed.String() == s
}
