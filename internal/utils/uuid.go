package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers.
// Time-ordered v7 IDs are preferred so that log lines sort by arrival;
// a random v4 is returned if the v7 clock source fails.
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
