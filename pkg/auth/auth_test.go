package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", 24*time.Hour)

	token, err := issuer.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.Issue("admin")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, err := NewTokenIssuer("other-secret", time.Hour).Issue("admin")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer("secret", time.Hour).Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCredentialsMatch(t *testing.T) {
	plain := Credentials{Username: "admin", Password: "password123"}
	require.True(t, plain.Match("admin", "password123"))
	require.False(t, plain.Match("admin", "wrong"))
	require.False(t, plain.Match("root", "password123"))
	require.False(t, plain.Match("", ""))

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	hashed := Credentials{Username: "admin", Password: string(hash)}
	require.True(t, hashed.Match("admin", "s3cret"))
	require.False(t, hashed.Match("admin", string(hash)))
}

func TestUsernameContext(t *testing.T) {
	_, ok := UsernameFrom(context.Background())
	require.False(t, ok)

	username, ok := UsernameFrom(WithUsername(context.Background(), "admin"))
	require.True(t, ok)
	require.Equal(t, "admin", username)
}
