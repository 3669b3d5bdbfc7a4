package usecase

import (
	"context"

	"github.com/riskibarqy/football-hub/internal/domain/footballapi"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

// attempt is the outcome of one optional gateway call.
type attempt[T any] struct {
	resp footballapi.Response[T]
	err  error
}

func attemptCall[T any](ctx context.Context, call func(context.Context) (footballapi.Response[T], error)) attempt[T] {
	resp, err := call(ctx)
	return attempt[T]{resp: resp, err: err}
}

// orEmpty collapses a failed attempt into an empty, error-free response.
func (a attempt[T]) orEmpty(ctx context.Context, logger *logging.Logger, branch string, fixtureID int64) footballapi.Response[T] {
	if a.err == nil {
		return a.resp
	}

	logger.WarnContext(ctx, "optional fixture lookup failed, substituting empty result",
		"branch", branch,
		"fixture_id", fixtureID,
		"error", a.err,
	)
	return footballapi.Response[T]{}
}

func collectProviderErrors(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

func firstOrNil[T any](items []T) *T {
	if len(items) == 0 {
		return nil
	}
	item := items[0]
	return &item
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
