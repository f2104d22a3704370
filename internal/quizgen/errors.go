package quizgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/studypal/internal/llm"
)

// Kind classifies a generation failure. The set is closed; the presentation
// layer switches on it to decide where and how to surface the failure.
type Kind string

const (
	// KindValidation: bad input, no network call was made.
	KindValidation Kind = "validation"

	// KindUnauthorized: the API rejected the credential.
	KindUnauthorized Kind = "unauthorized"

	// KindForbidden: valid credential without access (usually no billing).
	KindForbidden Kind = "forbidden"

	// KindRateLimited: still throttled after retries were exhausted.
	KindRateLimited Kind = "rate_limited"

	// KindServer: the provider returned an unexpected non-200 status.
	KindServer Kind = "server"

	// KindTimeout: the request timed out after retries were exhausted.
	KindTimeout Kind = "timeout"

	// KindNetwork: the request never reached the provider.
	KindNetwork Kind = "network"

	// KindParse: the model's response is not valid JSON.
	KindParse Kind = "parse"

	// KindFormat: valid JSON missing the required quiz structure.
	KindFormat Kind = "format"
)

// GenerationError is the single error type crossing the generator boundary.
// Hint carries a user-facing remediation; rendering it is the presentation
// layer's concern.
type GenerationError struct {
	Kind Kind
	Hint string
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Remediation hints, condensed from the provider's documented failure modes.
const (
	hintUnauthorized = "The API key was rejected. Copy a fresh key from your provider dashboard and restart."
	hintForbidden    = "The API key has no access. Set up billing and add credits to your provider account."
	hintRateLimited  = "The API is throttling requests. Wait a few minutes, check your quota, or generate fewer questions."
	hintServer       = "The provider returned an error. This is usually transient; try again shortly."
	hintTimeout      = "The request timed out. Check your connection and try again."
	hintNetwork      = "Could not reach the provider. Check your network connection."
	hintParse        = "The model returned text that is not valid JSON. Regenerating usually fixes this."
	hintFormat       = "The model returned JSON in an unexpected shape. Regenerating usually fixes this."
)

// wrapTransportError maps each transport error variant onto a GenerationError
// kind with its remediation hint. ErrRetriesExhausted is transparent here:
// errors.As reaches through it to the final attempt's classification.
func wrapTransportError(err error) *GenerationError {
	var (
		unauth    *llm.ErrUnauthorized
		forbidden *llm.ErrForbidden
		rateLimit *llm.ErrRateLimit
		timeout   *llm.ErrTimeout
		server    *llm.ErrServer
	)

	switch {
	case errors.As(err, &unauth):
		return &GenerationError{Kind: KindUnauthorized, Hint: hintUnauthorized, Err: err}
	case errors.As(err, &forbidden):
		return &GenerationError{Kind: KindForbidden, Hint: hintForbidden, Err: err}
	case errors.As(err, &rateLimit):
		return &GenerationError{Kind: KindRateLimited, Hint: hintRateLimited, Err: err}
	case errors.As(err, &timeout):
		return &GenerationError{Kind: KindTimeout, Hint: hintTimeout, Err: err}
	case errors.As(err, &server):
		return &GenerationError{Kind: KindServer, Hint: hintServer, Err: err}
	default:
		return &GenerationError{Kind: KindNetwork, Hint: hintNetwork, Err: err}
	}
}
