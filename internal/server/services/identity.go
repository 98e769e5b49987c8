package services

import (
	"context"

	"github.com/soplanita/giftgenie/internal/server/auth"
)

// Resolver maps an opaque caller token to the stable user identifier minted
// by the auth server. Verifying the token does not prove the user record
// still exists; a revoked account with a live token is reported by the
// membership checks, not here.
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// JWTResolver verifies HS256 access tokens with the shared secret.
type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret []byte) *JWTResolver {
	return &JWTResolver{secret: secret}
}

func (r *JWTResolver) Resolve(_ context.Context, token string) (string, error) {
	return auth.GetUserIDFromToken(token, r.secret)
}
