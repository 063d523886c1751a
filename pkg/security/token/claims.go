package token

import "time"

// Claims represents the validated token claims.
type Claims struct {
	// UserID is the unique identifier of the user (subject).
	UserID string
	// Email is the caller's email address.
	Email string
	// Role is the user's role (e.g., "super_admin", "catalog_manager").
	Role string
	// Type is the token type (e.g., "access", "refresh").
	Type string
	// IssuedAt is the time when the token was issued.
	IssuedAt time.Time
	// ExpiresAt is the time when the token expires.
	ExpiresAt time.Time
	// NotBefore is the time before which the token is not valid.
	NotBefore time.Time
}

// IsExpired checks if the token has expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsAccess returns true if the token is an access token.
func (c *Claims) IsAccess() bool {
	return c.Type == "access"
}
