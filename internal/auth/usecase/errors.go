package usecase

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrEmailTaken rejects a sign-up whose email already exists in the
	// targeted store.
	ErrEmailTaken = errors.New("email already registered")

	// ErrIdentityNotFound means a GitHub-verified email exists in neither
	// store; the flow redirects to registration instead of provisioning.
	ErrIdentityNotFound = errors.New("no account for this email")

	// ErrInvalidToken covers bad signatures, expiry, and malformed claims.
	ErrInvalidToken = errors.New("invalid or expired token")
)
