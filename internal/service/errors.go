package service

import "errors"

var (
	// ErrAccountNotLinked is returned when a sync is requested for an
	// account that has not completed the OAuth flow yet.
	ErrAccountNotLinked = errors.New("account has no stored credentials")

	// ErrInvalidEmail is returned when an account creation request carries
	// an empty or unusable email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyAuthCode is returned when the OAuth callback arrives without
	// an authorization code.
	ErrEmptyAuthCode = errors.New("empty authorization code")

	// ErrNormalization is returned (wrapped) when a fetched page item
	// cannot be decoded into its canonical record shape. The sync run that
	// hits it fails without advancing the cursor.
	ErrNormalization = errors.New("failed to normalize record")

	// ErrUnknownResource is returned when an operation names a resource
	// type the engine does not track.
	ErrUnknownResource = errors.New("unknown resource type")
)
