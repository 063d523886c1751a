package token

import (
	"encoding/hex"

	"aidanwoods.dev/go-paseto"
)

// Validator validates tokens and returns claims.
type Validator interface {
	// ValidateToken validates a token and returns the claims.
	ValidateToken(token string) (*Claims, error)
}

// tokenValidator validates PASETO v4 public tokens using a public key.
// Intended for services that validate tokens issued by the auth-service.
type tokenValidator struct {
	publicKey paseto.V4AsymmetricPublicKey
}

// newTokenValidator creates a new token validator with the given public key.
// The publicKey must be a hex-encoded 32-byte Ed25519 public key.
func newTokenValidator(config Config) (Validator, error) {
	keyBytes, err := hex.DecodeString(config.PublicKey)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	if len(keyBytes) != 32 {
		return nil, ErrInvalidPublicKey
	}

	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromBytes(keyBytes)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	return &tokenValidator{
		publicKey: publicKey,
	}, nil
}

// ValidateToken validates a token and returns the claims.
func (v *tokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	parser := paseto.NewParser()

	token, err := parser.ParseV4Public(v.publicKey, tokenString, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	subject, err := token.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, err := token.GetString("email")
	if err != nil {
		return nil, ErrInvalidToken
	}

	role, _ := token.GetString("role")
	tokenType, _ := token.GetString("type")

	iat, _ := token.GetIssuedAt()
	exp, _ := token.GetExpiration()
	nbf, _ := token.GetNotBefore()

	return &Claims{
		UserID:    subject,
		Email:     email,
		Role:      role,
		Type:      tokenType,
		IssuedAt:  iat,
		ExpiresAt: exp,
		NotBefore: nbf,
	}, nil
}
