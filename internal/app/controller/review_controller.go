package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopfront/shopfront-backend/internal/notice"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Create posts a review on a product. The router requires a logged-in user
// before this handler runs.
// POST /product/:id/review
func (ctrl *ReviewController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notice.Redirect(c, sess, "/products", notice.SomethingWrong)
		return
	}

	// An omitted rating defaults to 5; a present but unparsable one is
	// recorded as 0. Values outside 1 to 5 are stored as given.
	rating := service.DefaultRating
	if raw := c.PostForm("rating"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			parsed = 0
		}
		rating = parsed
	}

	_, err = ctrl.reviewService.Create(uint(productID), sess.UserID(), sess.Username(), rating, c.PostForm("review"))
	if err != nil {
		log.Error("Failed to create review", err, map[string]interface{}{
			"product_id": productID,
			"user_id":    sess.UserID(),
		})
		notice.Redirect(c, sess, "/product/"+c.Param("id"), notice.SomethingWrong)
		return
	}

	notice.Redirect(c, sess, "/product/"+c.Param("id"), notice.ReviewPosted)
}
