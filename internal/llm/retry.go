package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider is a decorator that retries rate-limited and timed-out
// requests. Every other failure is terminal and passes through unchanged.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		wait, retryable := r.retryWait(err)
		if !retryable {
			return nil, err
		}

		// Last attempt — don't sleep, report exhaustion.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, &ErrRetriesExhausted{Attempts: r.config.MaxAttempts, Err: lastErr}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryWait reports whether err is retryable and how long to wait first.
// A 429 honors the server's Retry-After when present, else falls back to
// the configured rate-limit wait. A timeout waits a short fixed delay.
func (r *RetryProvider) retryWait(err error) (time.Duration, bool) {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		if rl.RetryAfter > 0 {
			return rl.RetryAfter, true
		}
		return r.config.RateLimitWait, true
	}

	var to *ErrTimeout
	if errors.As(err, &to) {
		return r.config.TimeoutWait, true
	}

	return 0, false
}
