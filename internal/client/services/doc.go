// Package services holds one service per API resource: auth, goals, tasks,
// recommendations and the user profile.
//
// Every operation returns a models.Result and never an error. Failures
// reported by the transport already carry a user-facing message, which is
// forwarded as is; anything else (encoding, decoding) is replaced by the
// operation's fallback message. List operations fail with an empty, non-nil
// slice so renderers never need a nil check. Nothing is retried.
package services
