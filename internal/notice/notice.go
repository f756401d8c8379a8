// Package notice implements the storefront's failure policy: user-facing
// outcomes are transient flash notices attached to the session, surfaced on
// the next rendered page, never hard error statuses.
package notice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/session"
)

// Notice text shown to visitors. The wording is part of the page contract.
const (
	AddedToCart        = "Added to cart"
	CartUpdated        = "Cart updated"
	CartEmpty          = "Cart empty"
	OrderPlaced        = "Order placed successfully"
	LoginToOrder       = "Please login to place order"
	LoginToReview      = "Login to add review"
	ReviewPosted       = "Review posted"
	UsernameExists     = "Username already exists"
	Registered         = "Registered. Please login."
	InvalidCredentials = "Invalid credentials"
	LoggedIn           = "Logged in"
	LoggedOut          = "Logged out"
	AdminsOnly         = "Access denied. Admins only."
	ProductDeleted     = "Product deleted successfully"
	ProductAdded       = "Product added successfully"
	SomethingWrong     = "Something went wrong. Please try again."
)

// Redirect queues a flash notice and redirects the browser. 303 forces the
// follow-up request to be a GET even after form posts.
func Redirect(c *gin.Context, sess *session.Session, location, message string) {
	if sess != nil && message != "" {
		sess.Flash(message)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectBack redirects to the Referer when the browser sent one, falling
// back to the given location.
func RedirectBack(c *gin.Context, sess *session.Session, fallback, message string) {
	target := c.Request.Referer()
	if target == "" {
		target = fallback
	}
	Redirect(c, sess, target, message)
}
