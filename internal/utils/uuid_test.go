package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, g.Generate())
}

func TestUUIDGenerator_SKU(t *testing.T) {
	g := NewUUIDGenerator()

	sku := g.SKU()
	assert.Regexp(t, regexp.MustCompile(`^SKU-[0-9A-F]{8}$`), sku)
	assert.NotEqual(t, sku, g.SKU())
}
