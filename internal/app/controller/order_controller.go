package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopfront/shopfront-backend/internal/notice"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Checkout places an order from the session cart and clears the cart on
// success. Authentication is enforced by the route's RequireUser gate; an
// empty cart redirects back without creating anything.
// POST /checkout
func (ctrl *OrderController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	order, err := ctrl.orderService.Checkout(sess.UserID(), sess.Cart())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			notice.Redirect(c, sess, "/cart", notice.CartEmpty)
			return
		}
		log.Error("Checkout failed", err, map[string]interface{}{
			"user_id": sess.UserID(),
		})
		notice.Redirect(c, sess, "/cart", notice.SomethingWrong)
		return
	}

	sess.ClearCart()
	sess.Flash(notice.OrderPlaced)

	log.Info("Checkout completed", map[string]interface{}{
		"user_id":  sess.UserID(),
		"order_id": order.ID,
		"total":    order.Total,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  notice.OrderPlaced,
		"order_id": strconv.FormatUint(uint64(order.ID), 10),
		"total":    order.Total,
	})
}

// History lists the logged-in user's orders, newest first.
// GET /orders
func (ctrl *OrderController) History(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	orders, err := ctrl.orderService.OrdersForUser(sess.UserID())
	if err != nil {
		log.Error("Failed to list orders", err, map[string]interface{}{
			"user_id": sess.UserID(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":  orders,
		"notices": sess.PopFlashes(),
	})
}

// Detail returns one of the logged-in user's orders. Someone else's order and
// a nonexistent one look the same.
// GET /order/:id
func (ctrl *OrderController) Detail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order, err := ctrl.orderService.OrderForUser(sess.UserID(), uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"user_id":  sess.UserID(),
			"order_id": orderID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
