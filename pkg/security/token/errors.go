package token

import "errors"

var (
	// ErrInvalidPublicKey is returned when the configured public key cannot be parsed.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingToken is returned when no token is present on the request.
	ErrMissingToken = errors.New("missing token")
)
