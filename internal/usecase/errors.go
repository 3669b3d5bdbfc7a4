package usecase

import (
	"context"
	"errors"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-hub/internal/platform/result"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrRateLimited           = errors.New("rate limited")
	ErrProviderRejected      = errors.New("provider rejected request")
)

const (
	genericErrorMessage   = "something went wrong, please try again"
	cancelledErrorMessage = "request cancelled"
	timeoutErrorMessage   = "request timed out, please try again"
)

// UserMessage returns the text shown next to a retry affordance: the hints attached to
// err when there are any, otherwise the error text itself.
func UserMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}
	if errors.Is(err, result.ErrPanic) {
		return genericErrorMessage
	}
	if errors.Is(err, context.Canceled) {
		return cancelledErrorMessage
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutErrorMessage
	}
	if hint := strings.TrimSpace(crerr.FlattenHints(err)); hint != "" {
		return hint
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return genericErrorMessage
}

// providerRejection turns application-level error strings into one fatal error.
func providerRejection(messages []string) error {
	joined := strings.Join(messages, ", ")
	return crerr.WithHint(crerr.Wrapf(ErrProviderRejected, "%s", joined), joined)
}
