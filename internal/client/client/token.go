package client

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes a session token for display. Nothing here is verified
// and nothing is enforced: the server alone decides whether a token is valid.
type TokenInfo struct {
	JWT       bool
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// DescribeToken decodes JWT claims without verifying the signature. Opaque
// tokens yield a zero TokenInfo.
func DescribeToken(token string) TokenInfo {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{JWT: true}
	info.Subject, _ = claims.GetSubject()
	if t, err := claims.GetIssuedAt(); err == nil && t != nil {
		info.IssuedAt = t.Time
	}
	if t, err := claims.GetExpirationTime(); err == nil && t != nil {
		info.ExpiresAt = t.Time
	}
	return info
}
