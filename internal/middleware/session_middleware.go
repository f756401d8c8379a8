package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/shopfront/shopfront-backend/internal/session"
	"github.com/shopfront/shopfront-backend/pkg/logger"
)

// SessionKey is the gin context key holding the request's *session.Session.
const SessionKey = "session"

// SessionMiddleware resolves the visitor's cookie to a session before the
// handler runs and persists it afterwards if the handler changed anything.
// Handlers never touch cookies or the store directly; they get an explicit
// session object from the context.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, _ := c.Cookie(manager.CookieName())
		sess := manager.Load(c.Request.Context(), cookieValue)
		c.Set(SessionKey, sess)

		// The cookie only carries the signed session ID, so it can be set
		// before the handler writes the response body.
		if sess.Fresh() {
			value, err := manager.CookieValue(sess)
			if err != nil {
				logger.Error("Failed to sign session cookie", err, map[string]interface{}{
					"session_id": sess.ID,
				})
			} else {
				c.SetCookie(
					manager.CookieName(),
					value,
					int(manager.TTL().Seconds()),
					"/",
					"",
					false,
					true,
				)
			}
		}

		c.Next()

		if sess.Fresh() || sess.Modified() {
			if err := manager.Save(c.Request.Context(), sess); err != nil {
				logger.Error("Failed to persist session", err, map[string]interface{}{
					"session_id": sess.ID,
				})
			}
		}
	}
}

// GetSession retrieves the request's session from the gin context.
func GetSession(c *gin.Context) *session.Session {
	if value, exists := c.Get(SessionKey); exists {
		if sess, ok := value.(*session.Session); ok {
			return sess
		}
	}
	// Session middleware not installed; should not happen outside tests.
	return nil
}
