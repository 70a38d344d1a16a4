// Package auth provides the authentication plumbing consumed by the API
// layer: JWT issuance and verification, and bcrypt password comparison.
package auth

import "context"

// Claims holds the validated claims extracted from an access token.
type Claims struct {
	// UserID is the numeric identifier of the authenticated user.
	UserID int64
}

// JWTService defines the interface for generating and validating access
// tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the given user ID.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies a token's signature and time claims and
	// returns the embedded claims. Returns ErrExpiredToken,
	// ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
