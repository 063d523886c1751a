package token

import (
	"encoding/hex"
	"testing"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyPair(t *testing.T) (paseto.V4AsymmetricSecretKey, Config) {
	t.Helper()
	secretKey := paseto.NewV4AsymmetricSecretKey()
	publicKeyHex := hex.EncodeToString(secretKey.Public().ExportBytes())

	enabled := true
	return secretKey, Config{Enabled: &enabled, PublicKey: publicKeyHex}
}

func signedToken(t *testing.T, secretKey paseto.V4AsymmetricSecretKey, mutate func(*paseto.Token)) string {
	t.Helper()
	tok := paseto.NewToken()
	tok.SetSubject("u1")
	tok.SetString("email", "admin@example.com")
	tok.SetString("role", "super_admin")
	tok.SetString("type", "access")
	tok.SetIssuedAt(time.Now())
	tok.SetNotBefore(time.Now())
	tok.SetExpiration(time.Now().Add(time.Hour))
	if mutate != nil {
		mutate(&tok)
	}
	return tok.V4Sign(secretKey, nil)
}

func TestNewTokenValidator(t *testing.T) {
	t.Run("creates validator from hex public key", func(t *testing.T) {
		_, cfg := newTestKeyPair(t)

		validator, err := newTokenValidator(cfg)

		require.NoError(t, err)
		assert.NotNil(t, validator)
	})

	t.Run("rejects non-hex key", func(t *testing.T) {
		_, err := newTokenValidator(Config{PublicKey: "not-hex"})
		assert.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("rejects wrong-length key", func(t *testing.T) {
		_, err := newTokenValidator(Config{PublicKey: "abcd"})
		assert.ErrorIs(t, err, ErrInvalidPublicKey)
	})
}

func TestValidateToken(t *testing.T) {
	secretKey, cfg := newTestKeyPair(t)
	validator, err := newTokenValidator(cfg)
	require.NoError(t, err)

	t.Run("returns claims from a valid token", func(t *testing.T) {
		claims, err := validator.ValidateToken(signedToken(t, secretKey, nil))

		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, "super_admin", claims.Role)
		assert.True(t, claims.IsAccess())
		assert.False(t, claims.IsExpired())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("v4.public.garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed by another key", func(t *testing.T) {
		otherKey := paseto.NewV4AsymmetricSecretKey()
		_, err := validator.ValidateToken(signedToken(t, otherKey, nil))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := signedToken(t, secretKey, func(tok *paseto.Token) {
			tok.SetExpiration(time.Now().Add(-time.Minute))
		})
		_, err := validator.ValidateToken(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token without email claim", func(t *testing.T) {
		tok := paseto.NewToken()
		tok.SetSubject("u1")
		tok.SetIssuedAt(time.Now())
		tok.SetNotBefore(time.Now())
		tok.SetExpiration(time.Now().Add(time.Hour))

		_, err := validator.ValidateToken(tok.V4Sign(secretKey, nil))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNoopValidator(t *testing.T) {
	claims, err := noopValidator{}.ValidateToken("anything")

	require.NoError(t, err)
	assert.Equal(t, "admin@local", claims.Email)
	assert.True(t, claims.IsAccess())
}
