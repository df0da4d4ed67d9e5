package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FindByID(t *testing.T) {
	catalog := testCatalog()

	p, err := catalog.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Butter Croissant", p.Name)

	_, err = catalog.FindByID(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalog_Categories(t *testing.T) {
	categories := testCatalog().Categories()

	assert.Equal(t, []string{"cakes", "pastries", "muffins"}, categories)
}

func TestCatalog_PriceBounds(t *testing.T) {
	min, max, ok := testCatalog().PriceBounds()
	require.True(t, ok)
	assert.Equal(t, "45", min.String())
	assert.Equal(t, "750", max.String())

	_, _, ok = Catalog{}.PriceBounds()
	assert.False(t, ok)
}
