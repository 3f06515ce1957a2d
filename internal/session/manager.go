package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eddiereese03-a11y/foodapp/internal/store"
)

// ErrNotFound means the token refers to no live session; the caller is
// effectively unauthenticated.
var ErrNotFound = errors.New("session not found")

// Manager owns all live sessions in the process. Sessions live only in
// memory; an expired or cleared session closes its store handle and is
// gone.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   *zap.Logger
}

// NewManager creates a session manager with the given idle TTL.
func NewManager(ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create registers a session for validated credentials and returns it
// in the Idle state.
func (m *Manager) Create(db *gorm.DB, searchKey string) *Session {
	sess := newSession(db, searchKey)
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	m.logger.Info("session created", zap.String("session_id", sess.ID.String()))
	return sess
}

// Get returns the live session for an id, refreshing its TTL.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	sess.Touch()
	return sess, nil
}

// Remove clears a session unconditionally, closing its store handle.
// Removing an id that does not exist is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}
	if err := store.Close(sess.DB()); err != nil {
		m.logger.Warn("failed to close store handle", zap.String("session_id", id.String()), zap.Error(err))
	}
	m.logger.Info("session cleared", zap.String("session_id", id.String()))
}

// StartSweeper expires idle sessions in the background until the
// context is cancelled.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Manager) sweep() {
	m.mu.RLock()
	var expired []uuid.UUID
	for id, sess := range m.sessions {
		if sess.expired(m.ttl) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()
	for _, id := range expired {
		m.logger.Info("session expired", zap.String("session_id", id.String()))
		m.Remove(id)
	}
}
