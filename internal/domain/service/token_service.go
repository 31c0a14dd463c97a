package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded identity carried inside an access token.
type Claims struct {
	UserID   uuid.UUID
	Username string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a new signed, time-limited access token for a user.
	Generate(userID uuid.UUID, username string) (string, error)

	// Validate checks a token's signature and expiry and returns the decoded
	// claims. Any failure mode (malformed token, wrong algorithm, bad
	// signature, expiry) surfaces as an error.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
