package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrRequest      = errors.New("request rejected")
	ErrUnexpected   = errors.New("unexpected error")
	ErrCanceled     = errors.New("request canceled")
)

// User-facing messages produced by Classify.
const (
	MsgNetwork      = "Network error or server is not responding"
	MsgUnauthorized = "Authentication error. Please log in again."
	MsgNotFound     = "The requested resource was not found"
	MsgServer       = "Server error. Please try again later."
	MsgUnexpected   = "An unexpected error occurred"
	MsgCanceled     = "Request was canceled"
)

// ErrorKind is the failure class of an APIError.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindNetwork
	KindUnauthorized
	KindNotFound
	KindServer
	KindRequest
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindRequest:
		return "request"
	case KindCanceled:
		return "canceled"
	default:
		return "unexpected"
	}
}

// APIError is the normalized failure returned by HTTPClient.
// Status is zero when no response was received.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindNetwork:
		return ErrUnavailable
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	case KindRequest:
		return ErrRequest
	case KindCanceled:
		return ErrCanceled
	default:
		return ErrUnexpected
	}
}
