package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eddiereese03-a11y/foodapp/internal/middleware"
	"github.com/eddiereese03-a11y/foodapp/internal/service"
	"github.com/eddiereese03-a11y/foodapp/internal/session"
	"github.com/eddiereese03-a11y/foodapp/internal/spoonacular"
	"github.com/eddiereese03-a11y/foodapp/internal/store"
)

// connectFunc opens and validates a store connection; swapped out in
// tests.
type connectFunc func(ctx context.Context, endpoint, accessKey string) (*gorm.DB, error)

// Handler owns the HTTP surface of the app: credentials, search,
// detail, profile and saved recipes. Every error is converted to a
// user-facing JSON message here; nothing propagates past the handler.
type Handler struct {
	sessions *session.Manager
	tokens   *service.TokenService
	recipes  *spoonacular.Client
	logger   *zap.Logger
	connect  connectFunc
}

// NewHandler creates a new Handler instance.
func NewHandler(sessions *session.Manager, tokens *service.TokenService, recipes *spoonacular.Client, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		tokens:   tokens,
		recipes:  recipes,
		logger:   logger,
		connect:  store.Connect,
	}
}

// RegisterRoutes wires the API onto a router group. searchLimit may be
// nil when no Redis is configured.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, searchLimit *middleware.RateLimiter) {
	router.POST("/session", h.SetCredentials)
	router.DELETE("/session", h.ClearCredentials)

	authed := router.Group("", middleware.SessionMiddleware(h.tokens, h.sessions))
	{
		authed.GET("/session", h.GetSession)

		searchHandlers := []gin.HandlerFunc{}
		if searchLimit != nil {
			searchHandlers = append(searchHandlers, searchLimit.RateLimitMiddleware())
		}
		searchHandlers = append(searchHandlers, h.SearchRecipes)
		authed.POST("/recipes/search", searchHandlers...)

		authed.GET("/recipes/:id", h.GetRecipeDetail)
		authed.POST("/recipes/detail/close", h.CloseDetail)

		authed.PUT("/profile", h.SaveProfile)

		authed.POST("/saved-recipes", h.SaveRecipe)
		authed.GET("/saved-recipes", h.ListSavedRecipes)
		authed.DELETE("/saved-recipes/:id", h.RemoveSavedRecipe)
	}
}

// renderProviderError maps the recipe provider's error taxonomy onto
// distinct user-facing messages. The three recognized conditions each
// get their own message; everything else is a provider error with its
// status code.
func (h *Handler) renderProviderError(c *gin.Context, op string, err error) {
	h.logger.Warn("provider call failed", zap.String("op", op), zap.Error(err))

	switch {
	case errors.Is(err, spoonacular.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key. Please check your recipe API key."})
	case errors.Is(err, spoonacular.ErrQuotaExhausted):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily API limit reached. Try again tomorrow or upgrade your API plan."})
	case errors.Is(err, spoonacular.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out. Please try again."})
	default:
		var providerErr *spoonacular.ProviderError
		if errors.As(err, &providerErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": providerErr.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching recipes. Please try again."})
	}
}

func sessionOrAbort(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return nil, false
	}
	return sess, true
}
