package service

import (
	"testing"

	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (ReviewService, *model.User, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewService := NewReviewService(repository.NewReviewRepository(testDB))

	user := &model.User{Username: "user1", Password: "user1pass"}
	testDB.Create(user)

	product := &model.Product{
		Name:     "Learning Python (Book)",
		Price:    decimal.RequireFromString("39.00"),
		Stock:    100,
		Category: "Books",
		Images:   []string{},
	}
	testDB.Create(product)

	return reviewService, user, product, testDB
}

func TestReviewService_Create(t *testing.T) {
	reviewService, user, product, _ := setupReviewServiceTest(t)

	review, err := reviewService.Create(product.ID, user.ID, user.Username, 4, "Solid read")
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, "user1", review.Username)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_Create_OutOfRangeRatingStored(t *testing.T) {
	reviewService, user, product, _ := setupReviewServiceTest(t)

	review, err := reviewService.Create(product.ID, user.ID, user.Username, 17, "")
	require.NoError(t, err)
	assert.Equal(t, 17, review.Rating)
}

func TestReviewService_ListByProduct(t *testing.T) {
	reviewService, user, product, _ := setupReviewServiceTest(t)

	_, err := reviewService.Create(product.ID, user.ID, user.Username, 5, "Excellent product, highly recommended!")
	require.NoError(t, err)
	_, err = reviewService.Create(product.ID, user.ID, user.Username, 3, "It was fine")
	require.NoError(t, err)

	reviews, err := reviewService.ListByProduct(product.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	// Other products are untouched.
	reviews, err = reviewService.ListByProduct(product.ID + 1)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
