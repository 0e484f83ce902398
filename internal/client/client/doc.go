// Package client is the single point of egress from the goaltracker client
// to the REST API.
//
// # Overview
//
// HTTPClient wraps an *http.Client whose transport is decorated by
// authTransport. The decorator enforces two cross-cutting policies on every
// call:
//
//  1. Outgoing: the session token from the TokenStore is attached as a
//     bearer Authorization header (see AttachToken). Requests without a
//     stored token are sent as is; the server decides.
//  2. Incoming: any 401 response clears the stored token, whatever endpoint
//     produced it, and notifies the handlers registered with OnUnauthorized.
//
// HTTPClient.Do unwraps successful responses to their JSON payload and turns
// every failure into an *APIError via Classify, so callers see a single
// error shape with a human-readable Message.
//
// # Error Handling
//
// *APIError unwraps to a sentinel per failure class, matchable with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrServer,
// ErrRequest, ErrUnexpected, ErrCanceled.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use provided the TokenStore is.
// No call is retried.
package client
