package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/middleware"
	"github.com/shopfront/shopfront-backend/internal/notice"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterForm returns the registration page data.
// GET /register
func (ctrl *AuthController) RegisterForm(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"notices": sess.PopFlashes(),
	})
}

// Register creates an account from the submitted form. A taken username
// redirects back to the form; success redirects to the login page.
// POST /register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := ctrl.authService.Register(username, password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			notice.Redirect(c, sess, "/register", notice.UsernameExists)
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"username": username,
		})
		notice.Redirect(c, sess, "/register", notice.SomethingWrong)
		return
	}

	notice.Redirect(c, sess, "/login", notice.Registered)
}

// LoginForm returns the login page data.
// GET /login
func (ctrl *AuthController) LoginForm(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"notices": sess.PopFlashes(),
	})
}

// Login establishes the session on an exact credential match. Wrong username
// and wrong password get the same generic rejection.
// POST /login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ctrl.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			notice.Redirect(c, sess, "/login", notice.InvalidCredentials)
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"username": username,
		})
		notice.Redirect(c, sess, "/login", notice.SomethingWrong)
		return
	}

	sess.SetUser(user.ID, user.Username)
	notice.Redirect(c, sess, "/", notice.LoggedIn)
}

// Logout wipes the whole session, the cart included.
// GET /logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)

	sess.Clear()
	notice.Redirect(c, sess, "/", notice.LoggedOut)
}
