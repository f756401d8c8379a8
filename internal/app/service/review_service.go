package service

import (
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/pkg/logger"
)

// DefaultRating is used when a review is posted without a rating. Submitted
// ratings are stored as given, out-of-range values included.
const DefaultRating = 5

type ReviewService interface {
	Create(productID, userID uint, username string, rating int, text string) (*model.Review, error)
	ListByProduct(productID uint) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Create(productID, userID uint, username string, rating int, text string) (*model.Review, error) {
	logger.Info("Creating review", map[string]interface{}{
		"product_id": productID,
		"user_id":    userID,
		"rating":     rating,
	})

	review := &model.Review{
		ProductID: productID,
		UserID:    userID,
		Username:  username,
		Rating:    rating,
		Text:      text,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Review created successfully", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": productID,
	})
	return review, nil
}

func (s *reviewService) ListByProduct(productID uint) ([]model.Review, error) {
	return s.reviewRepo.FindByProductID(productID)
}
