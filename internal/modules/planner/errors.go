// README: Error taxonomy for the planning pipeline.
package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request missing a required field. Raised before
	// any upstream call.
	ErrValidation = errors.New("validation failed")

	// ErrNoData marks a request whose destination catalog is absent or
	// flagged unsuccessful. No LLM call is attempted.
	ErrNoData = errors.New("no destination data found")

	// ErrLLM marks a transport, timeout, or quota failure from the
	// generation call. The whole request fails; no partial plan is returned.
	ErrLLM = errors.New("trip generation failed")
)

// parseExcerptLimit bounds how much of the raw model output a ParseError
// retains for diagnostics.
const parseExcerptLimit = 500

// ParseError reports model output that did not parse as a trip plan. It
// keeps a truncated excerpt of the raw text so the caller can log or
// display the precise cause.
type ParseError struct {
	RawExcerpt string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(raw string, err error) *ParseError {
	if len(raw) > parseExcerptLimit {
		raw = raw[:parseExcerptLimit]
	}
	return &ParseError{RawExcerpt: raw, Err: err}
}
