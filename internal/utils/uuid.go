package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator issues identifiers for stored entities and default SKUs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4
// if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SKU returns a default stock keeping unit of the form "SKU-XXXXXXXX".
// The suffix is taken from a random UUIDv4 because a v7 prefix only encodes
// the creation time.
func (g *UUIDGenerator) SKU() string {
	return "SKU-" + strings.ToUpper(uuid.NewString()[:8])
}
