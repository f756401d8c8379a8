package repository

import (
	"testing"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (ProductRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewProductRepository(testDB), testDB
}

func TestProductRepository_CreateAndFindByID(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product := &model.Product{
		Name:        "Wireless Headphones",
		Description: "Noise-cancelling over-ear headphones",
		Price:       decimal.RequireFromString("129.99"),
		Stock:       30,
		Category:    "Electronics",
		Images:      []string{"/static/images/headphones.jpg"},
	}
	require.NoError(t, repo.Create(product))
	require.NotZero(t, product.ID)

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("129.99")))
	assert.Equal(t, []string{"/static/images/headphones.jpg"}, found.Images)
}

func TestProductRepository_FindWithFilter(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	require.NoError(t, repo.Create(&model.Product{
		Name:        "Wireless Headphones",
		Description: "Noise-cancelling over-ear headphones",
		Price:       decimal.RequireFromString("129.99"),
		Category:    "Electronics",
		Images:      []string{},
	}))
	require.NoError(t, repo.Create(&model.Product{
		Name:        "Cooking Pan Set",
		Description: "Non-stick 3-piece cooking pan set",
		Price:       decimal.RequireFromString("79.50"),
		Category:    "Home",
		Images:      []string{},
	}))

	products, err := repo.FindWithFilter(ProductFilter{Search: "headphones"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Headphones", products[0].Name)

	products, err = repo.FindWithFilter(ProductFilter{Category: "Home"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cooking Pan Set", products[0].Name)

	// Search and category combine with AND.
	products, err = repo.FindWithFilter(ProductFilter{Search: "headphones", Category: "Home"})
	require.NoError(t, err)
	assert.Empty(t, products)

	products, err = repo.FindWithFilter(ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductRepository_FindFeatured_OrderAndLimit(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(&model.Product{
			Name:     name,
			Price:    decimal.RequireFromString("1.00"),
			Category: "Misc",
			Images:   []string{},
		}))
	}

	products, err := repo.FindFeatured(2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "First", products[0].Name)
	assert.Equal(t, "Second", products[1].Name)
}

func TestProductRepository_Delete(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product := &model.Product{
		Name:     "Doomed",
		Price:    decimal.RequireFromString("1.00"),
		Category: "Misc",
		Images:   []string{},
	}
	require.NoError(t, repo.Create(product))
	require.NoError(t, repo.Delete(product.ID))

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting an absent ID is not an error.
	assert.NoError(t, repo.Delete(9999))
}
