package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/session"
)

type stubValidator struct {
	id  uuid.UUID
	err error
}

func (s stubValidator) Validate(token string) (uuid.UUID, error) {
	return s.id, s.err
}

func setupRouter(validator TokenValidator, sessions *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gated", SessionMiddleware(validator, sessions), func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": sess.ID.String()})
	})
	return router
}

func TestSessionMiddlewareRejectsBadHeaders(t *testing.T) {
	sessions := session.NewManager(time.Hour, zap.NewNop())
	router := setupRouter(stubValidator{err: errors.New("bad token")}, sessions)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"no token", "Bearer"},
		{"invalid token", "Bearer whatever"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/gated", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSessionMiddlewareRejectsExpiredSession(t *testing.T) {
	sessions := session.NewManager(time.Hour, zap.NewNop())
	// Token validates but the session it names no longer exists.
	router := setupRouter(stubValidator{id: uuid.New()}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddlewareLoadsSession(t *testing.T) {
	sessions := session.NewManager(time.Hour, zap.NewNop())
	sess := sessions.Create(nil, "key")
	router := setupRouter(stubValidator{id: sess.ID}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), sess.ID.String())
}
