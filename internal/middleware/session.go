package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie names the cookie carrying the anonymous cart
	// session id.
	SessionCookie = "grosirku_session"

	// SessionKey is the gin context key the resolved session id is
	// stored under.
	SessionKey = "session_id"

	sessionMaxAge = 60 * 60 * 24 * 7
)

// Session guarantees every request carries a session id, minting one
// for first-time visitors. The cart lives in Redis under this id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}

		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the session id resolved by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
