package voat

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims holds the claims decoded from a JWT access token.
type TokenClaims struct {
	// Subject is the account the token was issued for
	Subject string

	// Issuer is the token issuer (the API host)
	Issuer string

	// ExpiresAt is when the token stops being valid
	ExpiresAt time.Time

	// IssuedAt is when the token was minted
	IssuedAt time.Time
}

// DecodeAccessToken decodes the claims of a JWT access token without
// verifying its signature. The client has no access to the server's signing
// keys, so this is inspection only: use it to recover the expiry when
// restoring tokens that were persisted without one, never to establish trust.
func DecodeAccessToken(token string) (*TokenClaims, error) {
	parser := jwt.NewParser()

	var claims jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	decoded := &TokenClaims{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}

	return decoded, nil
}
