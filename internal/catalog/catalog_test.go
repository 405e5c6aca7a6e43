package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInvariants(t *testing.T) {
	all := Products()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.Price, 0, "negative price on %s", p.ID)
		assert.NotEmpty(t, p.Name)
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Klassisk Sauerkraut", p.Name)
	assert.Equal(t, 89, p.Price)

	_, ok = ByID("does-not-exist")
	assert.False(t, ok)
}

func TestProductsReturnsCopy(t *testing.T) {
	first := Products()
	first[0].Name = "mutated"

	again := Products()
	assert.Equal(t, "Klassisk Sauerkraut", again[0].Name)
}
