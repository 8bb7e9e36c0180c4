package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "beerhall_session"
	sessionCtxKey = "sessionID"
	// session cookies outlive the Redis blob TTL; an expired blob just
	// means an empty cart.
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// sessionMiddleware assigns every visitor an opaque session id carried in a
// cookie. The id is the key the cart blob is stored under.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
