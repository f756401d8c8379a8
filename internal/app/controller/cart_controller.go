package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopfront/shopfront-backend/internal/notice"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// Add puts a product into the session cart, incrementing any existing entry.
// Quantity defaults to 1 when absent and coerces to 0 when unparsable; no
// further validation happens.
// POST /add-to-cart/:id
func (ctrl *CartController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	productID := c.Param("id")
	quantity := 1
	if raw := c.PostForm("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			parsed = 0
		}
		quantity = parsed
	}

	sess.SetCart(ctrl.cartService.Add(sess.Cart(), productID, quantity))

	log.Info("Item added to cart", map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	})

	notice.RedirectBack(c, sess, "/products", notice.AddedToCart)
}

// View prices the cart against the current catalog. Entries for products
// that no longer exist are omitted from both the lines and the total.
// GET /cart
func (ctrl *CartController) View(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	view, err := ctrl.cartService.View(sess.Cart())
	if err != nil {
		log.Error("Failed to compute cart view", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   view.Lines,
		"total":   view.Total,
		"notices": sess.PopFlashes(),
	})
}

// Update overwrites the whole cart with the submitted id-to-quantity form
// pairs, dropping non-positive and unparsable quantities.
// POST /cart/update
func (ctrl *CartController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	if err := c.Request.ParseForm(); err != nil {
		log.Warn("Failed to parse cart update form", map[string]interface{}{
			"error": err.Error(),
		})
		notice.Redirect(c, sess, "/cart", notice.SomethingWrong)
		return
	}

	sess.SetCart(ctrl.cartService.Replace(c.Request.PostForm))

	log.Info("Cart replaced", map[string]interface{}{
		"entry_count": len(sess.Cart()),
	})

	notice.Redirect(c, sess, "/cart", notice.CartUpdated)
}

// Remove deletes one cart entry; removing an absent product is a no-op.
// POST /cart/remove/:id
func (ctrl *CartController) Remove(c *gin.Context) {
	sess := middleware.GetSession(c)

	sess.SetCart(ctrl.cartService.Remove(sess.Cart(), c.Param("id")))

	notice.Redirect(c, sess, "/cart", "")
}
