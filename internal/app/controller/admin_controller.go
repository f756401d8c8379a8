package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/app/model"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopfront/shopfront-backend/internal/notice"
	"github.com/shopfront/shopfront-backend/internal/storage"
	"github.com/shopspring/decimal"
)

// AdminController serves the admin panel. Every route is behind the
// RequireAdmin gate installed by the router.
type AdminController struct {
	catalogService service.CatalogService
	orderService   service.OrderService
	imageStorage   storage.ImageStorage
}

func NewAdminController(
	catalogService service.CatalogService,
	orderService service.OrderService,
	imageStorage storage.ImageStorage,
) *AdminController {
	return &AdminController{
		catalogService: catalogService,
		orderService:   orderService,
		imageStorage:   imageStorage,
	}
}

// Dashboard lists every product and the most recent orders.
// GET /admin
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	products, err := ctrl.catalogService.ListAllProducts()
	if err != nil {
		log.Error("Failed to list products for admin", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load admin dashboard",
		})
		return
	}

	orders, err := ctrl.orderService.RecentOrders()
	if err != nil {
		log.Error("Failed to list recent orders for admin", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load admin dashboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"orders":   orders,
		"notices":  sess.PopFlashes(),
	})
}

// DeleteProduct removes one product. Reviews and order snapshots keep their
// now-orphaned references.
// POST /admin/delete/:id
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		// A malformed ID references nothing; the delete is skipped.
		notice.Redirect(c, sess, "/admin", notice.ProductDeleted)
		return
	}

	if err := ctrl.catalogService.DeleteProduct(uint(id)); err != nil {
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		notice.Redirect(c, sess, "/admin", notice.SomethingWrong)
		return
	}

	notice.Redirect(c, sess, "/admin", notice.ProductDeleted)
}

// AddProductForm returns the data the add-product form needs: the list of
// category names. The submitted category is free text either way.
// GET /admin/add-product
func (ctrl *AdminController) AddProductForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	categories, err := ctrl.catalogService.CategoryNames()
	if err != nil {
		log.Error("Failed to list category names", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load form",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"notices":    sess.PopFlashes(),
	})
}

// AddProduct creates a product from the multipart form, optionally storing
// an uploaded image. Files whose extension is not an allowed image type are
// dropped without failing the product creation.
// POST /admin/add-product
func (ctrl *AdminController) AddProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		price = decimal.Zero
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil {
		stock = 0
	}

	product := &model.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.PostForm("category"),
		Images:      []string{},
	}

	if path, ok := ctrl.storeUpload(c); ok {
		product.Images = append(product.Images, path)
	}

	if err := ctrl.catalogService.CreateProduct(product); err != nil {
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		notice.Redirect(c, sess, "/admin/add-product", notice.SomethingWrong)
		return
	}

	notice.Redirect(c, sess, "/admin", notice.ProductAdded)
}

// storeUpload saves the optional "image" file and returns its recorded path.
// Missing files, disallowed extensions, and storage failures all report
// not-ok; only the extension check decides acceptance.
func (ctrl *AdminController) storeUpload(c *gin.Context) (string, bool) {
	log := middleware.GetLoggerFromContext(c)

	header, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	if !storage.AllowedFilename(header.Filename) {
		log.Warn("Rejected upload with disallowed extension", map[string]interface{}{
			"filename": header.Filename,
		})
		return "", false
	}

	file, err := header.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, map[string]interface{}{
			"filename": header.Filename,
		})
		return "", false
	}
	defer file.Close()

	path, err := ctrl.imageStorage.Save(c.Request.Context(), file, storage.SanitizeFilename(header.Filename))
	if err != nil {
		log.Error("Failed to store uploaded file", err, map[string]interface{}{
			"filename": header.Filename,
		})
		return "", false
	}
	return path, true
}
