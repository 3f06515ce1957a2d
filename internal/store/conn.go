package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eddiereese03-a11y/foodapp/internal/models"
)

// Connect opens a connection to the hosted store using the endpoint and
// access key supplied at session start, verifies it with a ping and a
// minimal read against the users table, and ensures both tables exist.
// On any failure the connection is closed and a descriptive error is
// returned; nothing is retried.
func Connect(ctx context.Context, endpoint, accessKey string) (*gorm.DB, error) {
	dsn, err := buildDSN(endpoint, accessKey)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store connection: %w", err)
	}

	// One session owns this handle; keep the pool small.
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize store client: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.User{}, &models.SavedRecipe{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to prepare store tables: %w", err)
	}

	// Minimal live read; credentials are not accepted until it succeeds.
	var emails []string
	if err := db.WithContext(ctx).Model(&models.User{}).Limit(1).Pluck("email", &emails).Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: validation read failed: %v", ErrUnreachable, err)
	}

	return db, nil
}

// Close releases the underlying connection. Safe to call on a nil
// handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// buildDSN turns the user-supplied endpoint and access key into a
// Postgres connection URL. The endpoint may be a full postgres:// URL
// or a bare host[:port]; the access key becomes the password.
func buildDSN(endpoint, accessKey string) (string, error) {
	if endpoint == "" {
		return "", errors.New("store endpoint is required")
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		u = &url.URL{Scheme: "postgres", Host: endpoint}
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		u.Scheme = "postgres"
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, accessKey)

	if u.Port() == "" {
		u.Host += ":5432"
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/postgres"
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
