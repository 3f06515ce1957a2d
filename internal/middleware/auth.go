package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eddiereese03-a11y/foodapp/internal/session"
)

// SessionKey is the gin context key the middleware stores the session
// under.
const SessionKey = "session"

// TokenValidator validates a session token and returns the session id
// it carries.
type TokenValidator interface {
	Validate(token string) (uuid.UUID, error)
}

// SessionMiddleware validates the bearer token and loads the live
// session into the request context. Every credential-gated route sits
// behind this; no session means no search, save or profile operation.
func SessionMiddleware(validator TokenValidator, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		sessionID, err := validator.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			c.Abort()
			return
		}

		sess, err := sessions.Get(sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, set credentials again"})
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session loaded by SessionMiddleware.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
