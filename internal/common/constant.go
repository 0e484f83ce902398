// Package common contains constants shared by the goaltracker client layers.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the session token in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader tags every outbound request for server-side correlation.
	RequestIDHeader = "X-Request-ID"

	// TokenMetadataKey is the single local storage key holding the session token.
	TokenMetadataKey = "auth_token"
)
