package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds server configuration only. The per-user secrets (store
// endpoint, store key, search API key) are deliberately absent: they
// arrive over the API at session start and live only in that session.
type Config struct {
	ServerHost string
	ServerPort string
	GinMode    string

	CORSOrigins []string

	JWTSecret     string
	SessionTTL    time.Duration
	SweepInterval time.Duration

	// Redis is optional; when unset the search rate limiter is off.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SearchBaseURL overrides the recipe provider endpoint, used by
	// tests and local stubs.
	SearchBaseURL string
}

// Load reads configuration from an optional config file and FOODAPP_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("FOODAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("cors.origins", []string{"http://localhost:5173"})
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("session.sweep_interval", "5m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("search.base_url", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		ServerHost:    v.GetString("server.host"),
		ServerPort:    v.GetString("server.port"),
		GinMode:       v.GetString("server.gin_mode"),
		CORSOrigins:   v.GetStringSlice("cors.origins"),
		JWTSecret:     v.GetString("jwt.secret"),
		SessionTTL:    v.GetDuration("session.ttl"),
		SweepInterval: v.GetDuration("session.sweep_interval"),
		RedisAddr:     v.GetString("redis.addr"),
		RedisPassword: v.GetString("redis.password"),
		RedisDB:       v.GetInt("redis.db"),
		SearchBaseURL: v.GetString("search.base_url"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt.secret (FOODAPP_JWT_SECRET) is required")
	}

	return cfg, nil
}
