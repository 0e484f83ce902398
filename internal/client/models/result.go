// Package models defines the client-side DTOs exchanged with the goaltracker
// API and the Result envelope returned by every service call.
package models

// DefaultError is used by Fail when no message is supplied, so a failed
// Result never carries an empty Error.
const DefaultError = "Something went wrong"

// Result is the uniform outcome of a service call. Exactly one of Data and
// Error is meaningful: Success implies Error is empty; !Success implies a
// non-empty Error and Data holding its zero value or a documented default
// (list operations use an empty slice).
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Fail[T any](msg string) Result[T] {
	var zero T
	return FailWith(msg, zero)
}

// FailWith is Fail with a default payload, e.g. an empty list.
func FailWith[T any](msg string, def T) Result[T] {
	if msg == "" {
		msg = DefaultError
	}
	return Result[T]{Success: false, Data: def, Error: msg}
}
