package llm

import (
	"context"
	"time"
)

// TimeoutProvider is a decorator that bounds each request at a fixed
// deadline and classifies deadline hits as ErrTimeout.
type TimeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps a Provider with a per-request deadline.
func WithTimeout(p Provider, limit time.Duration) Provider {
	return &TimeoutProvider{inner: p, limit: limit}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	resp, err := t.inner.Generate(attemptCtx, req)
	if err != nil && attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		return nil, &ErrTimeout{Err: err}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
