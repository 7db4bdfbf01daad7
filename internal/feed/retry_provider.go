package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a Provider with retry/backoff behavior on agenda
// loads. Detail fetches pass through untouched: a failed detail simply
// contributes no patch that poll tick, so retrying there only adds latency.
type retryingProvider struct {
	inner       Provider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with agenda-load retries.
// If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, logger *slog.Logger, maxAttempts int, backoff time.Duration) Provider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchAgenda(ctx context.Context, scope matches.Scope) (Agenda, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		agenda, err := r.inner.FetchAgenda(ctx, scope)
		if err == nil {
			return agenda, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn("agenda fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return Agenda{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn("agenda fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return Agenda{}, lastErr
}

func (r *retryingProvider) FetchDetail(ctx context.Context, scope matches.Scope, matchID int) (matches.OverlayPatch, error) {
	return r.inner.FetchDetail(ctx, scope, matchID)
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
