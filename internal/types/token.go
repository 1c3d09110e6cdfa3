package types

import "github.com/google/uuid"

// TokenClaims represents the validated claims of a session token.
type TokenClaims struct {
	UserID uuid.UUID
	Name   string
}
