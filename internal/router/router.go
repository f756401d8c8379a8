package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/config"
	"github.com/shopfront/shopfront-backend/internal/app/controller"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopfront/shopfront-backend/internal/notice"
	"github.com/shopfront/shopfront-backend/internal/session"
)

type Router struct {
	catalogController *controller.CatalogController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	authController    *controller.AuthController
	reviewController  *controller.ReviewController
	adminController   *controller.AdminController
	sessionManager    *session.Manager
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	authController *controller.AuthController,
	reviewController *controller.ReviewController,
	adminController *controller.AdminController,
	sessionManager *session.Manager,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		cartController:    cartController,
		orderController:   orderController,
		authController:    authController,
		reviewController:  reviewController,
		adminController:   adminController,
		sessionManager:    sessionManager,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SessionMiddleware(r.sessionManager))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Shopfront is running",
		})
	})

	// Uploaded product images are served straight from the upload directory.
	router.Static("/static/images", "./"+r.config.Upload.Dir)

	router.GET("/", r.catalogController.Home)
	router.GET("/products", r.catalogController.ListProducts)
	router.GET("/product/:id", r.catalogController.ProductDetail)
	router.POST("/product/:id/review",
		middleware.RequireUser(notice.LoginToReview),
		r.reviewController.Create,
	)

	router.POST("/add-to-cart/:id", r.cartController.Add)
	router.GET("/cart", r.cartController.View)
	router.POST("/cart/update", r.cartController.Update)
	router.POST("/cart/remove/:id", r.cartController.Remove)
	router.POST("/checkout",
		middleware.RequireUser(notice.LoginToOrder),
		r.orderController.Checkout,
	)
	router.GET("/orders",
		middleware.RequireUser(notice.LoginToOrder),
		r.orderController.History,
	)
	router.GET("/order/:id",
		middleware.RequireUser(notice.LoginToOrder),
		r.orderController.Detail,
	)

	router.GET("/register", r.authController.RegisterForm)
	router.POST("/register", r.authController.Register)
	router.GET("/login", r.authController.LoginForm)
	router.POST("/login", r.authController.Login)
	router.GET("/logout", r.authController.Logout)

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin(r.config.Admin.Username))
	{
		admin.GET("", r.adminController.Dashboard)
		admin.POST("/delete/:id", r.adminController.DeleteProduct)
		admin.GET("/add-product", r.adminController.AddProductForm)
		admin.POST("/add-product", r.adminController.AddProduct)
	}

	router.GET("/api/products", r.catalogController.APIProducts)

	return router
}
