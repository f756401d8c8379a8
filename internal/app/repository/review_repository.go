package repository

import (
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByProductID(productID uint) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	logger.Debug("Creating review in database", map[string]interface{}{
		"product_id": review.ProductID,
		"user_id":    review.UserID,
		"rating":     review.Rating,
	})

	if err := r.db.Create(review).Error; err != nil {
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"product_id": review.ProductID,
			"user_id":    review.UserID,
		})
		return err
	}

	logger.Debug("Review created in database", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
	})
	return nil
}

func (r *reviewRepository) FindByProductID(productID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		logger.Error("Failed to find reviews by product ID", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	logger.Debug("Reviews found by product ID", map[string]interface{}{
		"product_id": productID,
		"count":      len(reviews),
	})
	return reviews, nil
}
