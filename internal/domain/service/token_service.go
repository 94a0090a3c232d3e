package service

import "github.com/google/uuid"

// TokenClaims carries the identity extracted from an access token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles"`
}

// TokenParser validates access tokens and extracts their claims.
type TokenParser interface {
	ParseAccessToken(token string) (*TokenClaims, error)
}
