package service

import (
	"fmt"
	"testing"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (CatalogService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	categoryRepo := repository.NewCategoryRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	return NewCatalogService(categoryRepo, productRepo), testDB
}

func createTestProduct(t *testing.T, testDB *gorm.DB, name, description, category string, price string) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Stock:       10,
		Category:    category,
		Images:      []string{},
	}
	require.NoError(t, testDB.Create(product).Error)
	return product
}

func TestCatalogService_ListCategories(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	testDB.Create(&model.Category{Name: "Electronics", Description: "Phones, laptops and accessories"})
	testDB.Create(&model.Category{Name: "Books", Description: "Fiction & non-fiction"})

	categories, err := catalogService.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)

	names, err := catalogService.CategoryNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Books"}, names)
}

func TestCatalogService_FeaturedProducts_FirstEight(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	for i := 1; i <= 10; i++ {
		createTestProduct(t, testDB, fmt.Sprintf("Product %02d", i), "", "Electronics", "10.00")
	}

	featured, err := catalogService.FeaturedProducts()
	require.NoError(t, err)
	require.Len(t, featured, FeaturedProductCount)
	assert.Equal(t, "Product 01", featured[0].Name)
	assert.Equal(t, "Product 08", featured[7].Name)
}

func TestCatalogService_ListProducts_Search(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	createTestProduct(t, testDB, "Wireless Headphones", "Noise-cancelling over-ear headphones", "Electronics", "129.99")
	createTestProduct(t, testDB, "Cooking Pan Set", "Non-stick 3-piece cooking pan set", "Home", "79.50")

	// Search matches name or description.
	products, err := catalogService.ListProducts("headphones", "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Headphones", products[0].Name)

	products, err = catalogService.ListProducts("non-stick", "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cooking Pan Set", products[0].Name)
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	createTestProduct(t, testDB, "Wireless Headphones", "", "Electronics", "129.99")
	createTestProduct(t, testDB, "Men's Denim Jacket", "", "Fashion", "59.99")

	products, err := catalogService.ListProducts("", "Fashion")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Men's Denim Jacket", products[0].Name)

	// Unknown category matches nothing rather than falling back.
	products, err = catalogService.ListProducts("", "Toys")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_ListProducts_NoFilters(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	createTestProduct(t, testDB, "A", "", "Electronics", "1.00")
	createTestProduct(t, testDB, "B", "", "Fashion", "2.00")

	products, err := catalogService.ListProducts("", "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	_, err := catalogService.GetProduct(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_LeavesReviewsAndOrders(t *testing.T) {
	catalogService, testDB := setupCatalogServiceTest(t)

	product := createTestProduct(t, testDB, "Smartphone X", "", "Electronics", "699.00")

	user := &model.User{Username: "user1", Password: "user1pass"}
	testDB.Create(user)
	testDB.Create(&model.Review{
		ProductID: product.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Rating:    5,
		Text:      "Excellent product, highly recommended!",
	})
	testDB.Create(&model.Order{
		UserID: user.ID,
		Total:  product.Price,
		Status: model.OrderStatusPlaced,
		Items: []model.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		}},
	})

	require.NoError(t, catalogService.DeleteProduct(product.ID))

	_, err := catalogService.GetProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	var reviewCount, itemCount int64
	testDB.Model(&model.Review{}).Count(&reviewCount)
	testDB.Model(&model.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(1), reviewCount)
	assert.Equal(t, int64(1), itemCount)
}
