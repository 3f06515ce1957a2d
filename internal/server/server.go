package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/api"
	"github.com/eddiereese03-a11y/foodapp/internal/config"
	"github.com/eddiereese03-a11y/foodapp/internal/middleware"
	"github.com/eddiereese03-a11y/foodapp/internal/service"
	"github.com/eddiereese03-a11y/foodapp/internal/session"
	"github.com/eddiereese03-a11y/foodapp/internal/spoonacular"
)

// Server assembles the HTTP surface: router, session manager, handlers
// and the optional Redis-backed search limiter.
type Server struct {
	router   *gin.Engine
	http     *http.Server
	sessions *session.Manager
	logger   *zap.Logger
	cancel   context.CancelFunc
}

// New creates a new server instance from configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	sessions := session.NewManager(cfg.SessionTTL, logger)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	recipes := spoonacular.NewClient(cfg.SearchBaseURL)
	handler := api.NewHandler(sessions, tokens, recipes, logger)

	var searchLimit *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("search rate limiting enabled", zap.String("redis_addr", cfg.RedisAddr))
		searchLimit = middleware.NewSearchRateLimiter(client)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(router.Group("/api/v1"), searchLimit)

	sweepCtx, cancel := context.WithCancel(context.Background())
	sessions.StartSweeper(sweepCtx, cfg.SweepInterval)

	return &Server{
		router:   router,
		sessions: sessions,
		logger:   logger,
		cancel:   cancel,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}, nil
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and the session sweeper
// with it.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.http.Shutdown(ctx)
}
