package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:    "127.0.0.1",
		ServerPort:    "0",
		GinMode:       "test",
		CORSOrigins:   []string{"http://localhost:5173"},
		JWTSecret:     "test-secret",
		SessionTTL:    time.Hour,
		SweepInterval: time.Minute,
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRoutesAreGated(t *testing.T) {
	srv, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/search", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
