package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrorBody is the deserialization target for failed responses. Error is the
// canonical field; Message is read only when Error is empty because some
// endpoints of the API still use it.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Text returns the server-supplied error text, if any.
func (b ErrorBody) Text() string {
	if s := strings.TrimSpace(b.Error); s != "" {
		return s
	}
	return strings.TrimSpace(b.Message)
}

// Classify maps a failed exchange to an APIError. transportErr is the error
// returned when no response was received; otherwise status and body describe
// the non-2xx response.
func Classify(status int, body []byte, transportErr error) *APIError {
	if transportErr != nil {
		if errors.Is(transportErr, context.Canceled) {
			return &APIError{Kind: KindCanceled, Message: MsgCanceled}
		}
		return &APIError{Kind: KindNetwork, Message: MsgNetwork}
	}

	text := serverText(body)

	switch {
	case status == http.StatusUnauthorized:
		return &APIError{Kind: KindUnauthorized, Status: status, Message: MsgUnauthorized}
	case status == http.StatusNotFound:
		return &APIError{Kind: KindNotFound, Status: status, Message: orDefault(text, MsgNotFound)}
	case status == http.StatusInternalServerError:
		return &APIError{Kind: KindServer, Status: status, Message: orDefault(text, MsgServer)}
	case text != "":
		return &APIError{Kind: KindRequest, Status: status, Message: text}
	}

	return &APIError{Kind: KindUnexpected, Status: status, Message: MsgUnexpected}
}

func serverText(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Text()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
