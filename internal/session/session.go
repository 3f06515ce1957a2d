package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eddiereese03-a11y/foodapp/internal/spoonacular"
)

// State is the session controller's view state. A session only exists
// once credentials have been validated, so the unauthenticated state is
// the absence of a session.
type State string

const (
	StateIdle         State = "idle"
	StateResultsShown State = "results_shown"
	StateDetailOpen   State = "detail_open"
)

var (
	// ErrInvalidTransition means the requested operation is not legal
	// from the session's current state. The state is left unchanged.
	ErrInvalidTransition = errors.New("operation not allowed in current state")

	// ErrNoProfile gates saved-recipe operations until a profile has
	// been saved in this session.
	ErrNoProfile = errors.New("save your profile first")

	// ErrUnknownRecipe means the recipe id is not part of the current
	// search results.
	ErrUnknownRecipe = errors.New("recipe is not in the current results")
)

// Session holds one user's state for the lifetime of their credentials:
// the store handle, the search API key, the saved profile identity, the
// last search results and the selected recipe. It is discarded entirely
// when credentials are cleared. A mutex serializes the session's
// operations; one session never has two in flight.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	state    State
	db       *gorm.DB
	searchKey string

	profileEmail string
	budget       float64

	results  []spoonacular.RecipeSummary
	selected int

	lastSeen time.Time
}

func newSession(db *gorm.DB, searchKey string) *Session {
	return &Session{
		ID:        uuid.New(),
		state:     StateIdle,
		db:        db,
		searchKey: searchKey,
		lastSeen:  time.Now(),
	}
}

// State returns the current view state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// DB returns the session's store handle.
func (s *Session) DB() *gorm.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// SearchKey returns the recipe provider API key for this session.
func (s *Session) SearchKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchKey
}

// SetProfile records the saved profile identity for downstream save
// gating.
func (s *Session) SetProfile(email string, budget float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileEmail = email
	s.budget = budget
}

// ProfileEmail returns the email saved in this session, or "".
func (s *Session) ProfileEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileEmail
}

// Budget returns the weekly budget saved in this session.
func (s *Session) Budget() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// ShowResults replaces the held results and moves to ResultsShown. Legal
// from Idle and ResultsShown; a search is never applied from under an
// open detail view.
func (s *Session) ShowResults(results []spoonacular.RecipeSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle && s.state != StateResultsShown {
		return ErrInvalidTransition
	}
	s.results = results
	s.state = StateResultsShown
	return nil
}

// Results returns a copy of the last search's results.
func (s *Session) Results() []spoonacular.RecipeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]spoonacular.RecipeSummary, len(s.results))
	copy(out, s.results)
	return out
}

// HasResult reports whether the id is in the current results.
func (s *Session) HasResult(recipeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasResultLocked(recipeID)
}

func (s *Session) hasResultLocked(recipeID int) bool {
	for _, r := range s.results {
		if r.ID == recipeID {
			return true
		}
	}
	return false
}

// SelectRecipe opens the detail view over the current results. The
// results list is kept; closing the detail returns to it unchanged.
func (s *Session) SelectRecipe(recipeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResultsShown {
		return ErrInvalidTransition
	}
	if !s.hasResultLocked(recipeID) {
		return ErrUnknownRecipe
	}
	s.selected = recipeID
	s.state = StateDetailOpen
	return nil
}

// SelectedRecipe returns the id under the open detail view, or 0.
func (s *Session) SelectedRecipe() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// CloseDetail returns from the detail view to the prior results.
func (s *Session) CloseDetail() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDetailOpen {
		return ErrInvalidTransition
	}
	s.selected = 0
	s.state = StateResultsShown
	return nil
}

// Touch marks the session as recently used.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastSeen) > ttl
}
