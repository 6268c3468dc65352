package database

import (
	"path/filepath"
	"testing"

	"product-catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFillsEmptyTable(t *testing.T) {
	require.NoError(t, Connect(filepath.Join(t.TempDir(), "seed.db")))
	require.NoError(t, Seed(10))

	var products []models.Product
	require.NoError(t, DB.Find(&products).Error)
	require.Len(t, products, 10)

	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Price, 0.01)
		assert.Contains(t, Categories, p.Category)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.Regexp(t, `^SKU-\d{4}-[A-Z]{3}$`, p.SKU)
		assert.True(t, models.IsAbsoluteURL(p.Image), "seeded images are external URLs")
	}
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	require.NoError(t, Connect(filepath.Join(t.TempDir(), "seed.db")))
	require.NoError(t, DB.Create(&models.Product{
		Name: "Existing", Price: 5, Category: "Books", Stock: 1, SKU: "SKU-0001-XYZ",
	}).Error)

	require.NoError(t, Seed(10))

	var count int64
	require.NoError(t, DB.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "seeding must not touch a populated table")
}
