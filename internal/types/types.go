package types

import (
	"time"
)

// TokenClaims is the decoded session token payload shared between the auth
// service and the middleware that consumes it.
type TokenClaims struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	TokenID   string    `json:"jti"`
	ExpiresAt time.Time `json:"expires_at"`
}
