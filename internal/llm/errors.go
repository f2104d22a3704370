package llm

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// The transport error taxonomy. Every failure out of a Provider is one of
// these types; callers classify with errors.As and never inspect message
// strings.

// ErrUnauthorized indicates the API rejected the credential (401).
type ErrUnauthorized struct {
	Err error
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %v", e.Err)
}

func (e *ErrUnauthorized) Unwrap() error { return e.Err }

// ErrForbidden indicates the credential is valid but has no access,
// typically an account without billing set up (403).
type ErrForbidden struct {
	Err error
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("forbidden: %v", e.Err)
}

func (e *ErrForbidden) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned 429. RetryAfter is the
// server-provided wait, or zero when the header was absent or not numeric.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrServer indicates any other non-200 status from the provider.
type ErrServer struct {
	Status int
	Err    error
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("provider error (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrServer) Unwrap() error { return e.Err }

// ErrTimeout indicates the request exceeded its deadline.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrNetwork indicates the request never got a classified HTTP response
// (DNS failure, connection refused, and so on).
type ErrNetwork struct {
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrRetriesExhausted is returned by the retry decorator after the final
// attempt fails with a retryable error. It wraps the last attempt's error.
type ErrRetriesExhausted struct {
	Attempts int
	Err      error
}

func (e *ErrRetriesExhausted) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ErrRetriesExhausted) Unwrap() error { return e.Err }

// retryAfterDuration parses a Retry-After header value. Only integral
// seconds are honored; anything else yields zero.
func retryAfterDuration(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
