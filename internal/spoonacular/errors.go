package spoonacular

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the provider rejected the API key.
	ErrUnauthorized = errors.New("invalid API key")

	// ErrQuotaExhausted means the daily request quota is used up.
	ErrQuotaExhausted = errors.New("daily API quota reached")

	// ErrTimeout means the request exceeded the fixed client timeout.
	ErrTimeout = errors.New("request timed out")
)

// ProviderError reports a non-200 provider response that is not one of
// the recognized authorization or quota statuses.
type ProviderError struct {
	Status int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Status)
}
