package adapter

import "errors"

var (
	// ErrMaxRetriesReached is the terminal fetch error: the per-page retry
	// budget is exhausted. The orchestrator treats it as a failed run and
	// leaves the stored cursor untouched.
	ErrMaxRetriesReached = errors.New("max retries reached while fetching data")

	// ErrMissingTokens is returned when the token endpoint responded
	// without one of access_token, refresh_token, or id_token.
	ErrMissingTokens = errors.New("token response is missing required tokens")

	// ErrInvalidIDToken is returned when an id_token cannot be decoded or
	// carries no email claim.
	ErrInvalidIDToken = errors.New("invalid id token")
)
