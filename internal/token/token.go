package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role distinguishes shopper tokens from admin tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

// DefaultTTL is how long a session token stays valid.
const DefaultTTL = time.Hour

// ErrInvalid covers every way a token can fail verification:
// malformed, bad signature or expired. Callers only redirect to a
// login page either way, so the kinds are not distinguished.
var ErrInvalid = errors.New("invalid token")

// Claims is the session token payload. Subject carries the numeric
// record ID; Email is set for shopper tokens only.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs an HS256 session token for the given identity. A
// non-positive ttl falls back to DefaultTTL.
func Issue(secret string, subjectID uint, email string, role Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subjectID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies signature and expiry and returns the claims.
func Parse(secret, tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalid
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// SubjectID decodes the record ID from the subject claim.
func (c *Claims) SubjectID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return uint(id), nil
}
