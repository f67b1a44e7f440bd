package utils

import "github.com/google/uuid"

// UUIDGenerator produces note identifiers. Time-ordered v7 UUIDs keep
// the default list order stable for notes created in the same instant.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValid reports whether id parses as a UUID. Store code treats any
// malformed identifier as a missing note rather than an input error.
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
