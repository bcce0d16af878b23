package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// DefaultTokenTTL is the validity window of an issued token. There is no
// refresh mechanism; an expired token requires a fresh login.
const DefaultTokenTTL = 24 * time.Hour

// Issuer defines the interface for bearer token generation.
type Issuer interface {
	// IssueToken creates a signed token carrying the user's identity.
	IssueToken(userID uint, email, role string) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret     []byte
	expiration time.Duration
}

// NewIssuer creates a token issuer with the provided secret and expiration
// duration.
func NewIssuer(secret string, expiration time.Duration) Issuer {
	return &issuer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// IssueToken creates a signed HS256 token with standard claims plus the
// user's email and role.
func (g *issuer) IssueToken(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
		"role":  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
