package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueParseRoundTrip(t *testing.T) {
	tok, err := Issue(secret, 42, "a@x.com", RoleUser, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(secret, tok)
	require.NoError(t, err)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Issue(secret, 1, "", RoleOwner, time.Hour)
	require.NoError(t, err)

	_, err = Parse("other-secret", tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseMalformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := Parse(secret, raw)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestParseTampered(t *testing.T) {
	tok, err := Issue(secret, 1, "a@x.com", RoleUser, time.Hour)
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = Parse(secret, tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseExpired(t *testing.T) {
	now := time.Now()
	claims := &Claims{
		Role: RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = Parse(secret, tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestTokenBoundToSubject(t *testing.T) {
	tok, err := Issue(secret, 1, "a@x.com", RoleUser, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(secret, tok)
	require.NoError(t, err)
	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.NotEqual(t, uint(2), id)
}

func TestIssueDefaultTTL(t *testing.T) {
	tok, err := Issue(secret, 1, "", RoleUser, 0)
	require.NoError(t, err)

	claims, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}
