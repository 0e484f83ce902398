package client

import "context"

// TokenStore persists the session token. An absent token is reported as
// ("", nil). Implementations must be safe for concurrent use.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
