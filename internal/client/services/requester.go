package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/dmitrijs2005/goaltracker/internal/client/client"
	"github.com/dmitrijs2005/goaltracker/internal/client/models"
)

// Requester is the transport surface the services need; *client.HTTPClient
// satisfies it.
type Requester interface {
	Do(ctx context.Context, method, path string, in, out any) error
}

// failure reshapes err into a failed Result carrying def as its payload.
func failure[T any](err error, fallback string, def T) models.Result[T] {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return models.FailWith(apiErr.Message, def)
	}
	return models.FailWith(fallback, def)
}

// call performs one request and wraps the decoded payload.
func call[T any](ctx context.Context, r Requester, method, path string, in any, fallback string) models.Result[T] {
	var out T
	if err := r.Do(ctx, method, path, in, &out); err != nil {
		var zero T
		return failure(err, fallback, zero)
	}
	return models.OK(out)
}

// callList is call for collection endpoints: a null payload becomes an empty
// slice and failures carry an empty slice too.
func callList[T any](ctx context.Context, r Requester, method, path string, fallback string) models.Result[[]T] {
	var out []T
	if err := r.Do(ctx, method, path, nil, &out); err != nil {
		return failure(err, fallback, []T{})
	}
	if out == nil {
		out = []T{}
	}
	return models.OK(out)
}

// callNoContent is used for operations whose success carries no payload.
func callNoContent(ctx context.Context, r Requester, method, path string, in any, fallback string) models.Result[struct{}] {
	if err := r.Do(ctx, method, path, in, nil); err != nil {
		return failure(err, fallback, struct{}{})
	}
	return models.OK(struct{}{})
}

func seg(id string) string {
	return url.PathEscape(id)
}
