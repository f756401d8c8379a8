package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

type CatalogController struct {
	catalogService service.CatalogService
	reviewService  service.ReviewService
}

func NewCatalogController(
	catalogService service.CatalogService,
	reviewService service.ReviewService,
) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// Home returns the landing page data: all categories and the featured
// products.
// GET /
func (ctrl *CatalogController) Home(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		log.Error("Failed to fetch categories", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load home page",
		})
		return
	}

	products, err := ctrl.catalogService.FeaturedProducts()
	if err != nil {
		log.Error("Failed to fetch featured products", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load home page",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"products":   products,
		"username":   sess.Username(),
		"notices":    sess.PopFlashes(),
	})
}

// ListProducts returns the filtered catalog listing. Both filters are
// optional and combine with AND.
// GET /products?q=&category=
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	q := c.Query("q")
	category := c.Query("category")

	products, err := ctrl.catalogService.ListProducts(q, category)
	if err != nil {
		log.Error("Failed to list products", err, map[string]interface{}{
			"q":        q,
			"category": category,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list products",
		})
		return
	}

	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		log.Error("Failed to fetch categories", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":          products,
		"categories":        categories,
		"q":                 q,
		"selected_category": category,
		"notices":           sess.PopFlashes(),
	})
}

// ProductDetail returns one product and its reviews, unordered.
// GET /product/:id
func (ctrl *CatalogController) ProductDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	product, ok := ctrl.lookupProduct(c)
	if !ok {
		// Unparsable and unknown IDs both read as "no such product".
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Product not found",
			"notices": sess.PopFlashes(),
		})
		return
	}

	reviews, err := ctrl.reviewService.ListByProduct(product.ID)
	if err != nil {
		log.Error("Failed to fetch reviews", err, map[string]interface{}{
			"product_id": product.ID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"reviews": reviews,
		"notices": sess.PopFlashes(),
	})
}

// apiProduct is the read-only API shape: the full product document with its
// identifier coerced to a string.
type apiProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	CreatedAt   string          `json:"created_at"`
}

// APIProducts dumps the whole catalog as JSON for programmatic consumers.
// GET /api/products
func (ctrl *CatalogController) APIProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.catalogService.ListAllProducts()
	if err != nil {
		log.Error("Failed to list products for API", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list products",
		})
		return
	}

	out := make([]apiProduct, 0, len(products))
	for _, p := range products {
		out = append(out, apiProduct{
			ID:          strconv.FormatUint(uint64(p.ID), 10),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
			Images:      p.Images,
			CreatedAt:   p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	c.JSON(http.StatusOK, out)
}

// lookupProduct resolves the :id route param to a product. Both parse
// failures and missing rows come back as not-ok.
func (ctrl *CatalogController) lookupProduct(c *gin.Context) (*model.Product, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, false
	}

	product, err := ctrl.catalogService.GetProduct(uint(id))
	if err != nil {
		return nil, false
	}
	return product, true
}
