package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/goaltracker/internal/common"
	"github.com/dmitrijs2005/goaltracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestAttachToken_SetsBearerOnClone(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.local/goals", nil)

	got := AttachToken(req, "abc")

	assert.Equal(t, "Bearer abc", got.Header.Get(common.AuthorizationHeader))
	assert.Empty(t, req.Header.Get(common.AuthorizationHeader), "original request must not be modified")
}

func TestAttachToken_NoTokenNoHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.local/goals", nil)

	got := AttachToken(req, "")

	assert.Same(t, req, got)
	assert.Empty(t, got.Header.Get(common.AuthorizationHeader))
}

func TestAuthTransport_ClearsTokenOn401AndFiresHooks(t *testing.T) {
	store := &fakeStore{token: "abc"}
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer abc", r.Header.Get(common.AuthorizationHeader))
		return &http.Response{StatusCode: http.StatusUnauthorized, Body: http.NoBody, Request: r}, nil
	})
	tr := newAuthTransport(base, "api.local", store, logging.Nop())

	var fired atomic.Int32
	tr.unauthorized.add(func() { fired.Add(1) })
	tr.unauthorized.add(func() { fired.Add(1) })

	resp, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://api.local/recommendations", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, store.current())
	assert.EqualValues(t, 2, fired.Load())
}

func TestAuthTransport_KeepsTokenOnOtherStatuses(t *testing.T) {
	for _, code := range []int{200, 204, 400, 403, 404, 500} {
		store := &fakeStore{token: "abc"}
		base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: code, Body: http.NoBody, Request: r}, nil
		})
		tr := newAuthTransport(base, "api.local", store, logging.Nop())

		_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://api.local/goals", nil))
		require.NoError(t, err)
		assert.Equal(t, "abc", store.current(), "status %d", code)
		assert.Zero(t, store.cleared, "status %d", code)
	}
}

func TestAuthTransport_StoreErrorSendsWithoutHeader(t *testing.T) {
	store := &fakeStore{token: "abc", getErr: errors.New("disk gone")}
	var sawHeader atomic.Bool
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		sawHeader.Store(r.Header.Get(common.AuthorizationHeader) != "")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})
	tr := newAuthTransport(base, "api.local", store, logging.Nop())

	_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://api.local/goals", nil).WithContext(context.Background()))
	require.NoError(t, err)
	assert.False(t, sawHeader.Load())
}

func TestAuthTransport_PropagatesTransportError(t *testing.T) {
	store := &fakeStore{token: "abc"}
	boom := errors.New("connection reset")
	base := roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, boom })
	tr := newAuthTransport(base, "api.local", store, logging.Nop())

	_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://api.local/goals", nil))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "abc", store.current())
}

func TestAuthTransport_ForeignHostGetsNoTokenAndNo401Clear(t *testing.T) {
	store := &fakeStore{token: "abc"}
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Empty(t, r.Header.Get(common.AuthorizationHeader))
		return &http.Response{StatusCode: http.StatusUnauthorized, Body: http.NoBody, Request: r}, nil
	})
	tr := newAuthTransport(base, "api.local", store, logging.Nop())
	var fired atomic.Int32
	tr.unauthorized.add(func() { fired.Add(1) })

	resp, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "http://elsewhere.local/collect", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "abc", store.current())
	assert.Zero(t, store.cleared)
	assert.Zero(t, fired.Load())
}

func TestHTTPClient_RedirectToOtherHostDropsBearer(t *testing.T) {
	var foreignAuth atomic.Value
	foreignAuth.Store("unset")
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignAuth.Store(r.Header.Get(common.AuthorizationHeader))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(foreign.Close)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get(common.AuthorizationHeader))
		http.Redirect(w, r, foreign.URL+"/collect", http.StatusFound)
	}))
	t.Cleanup(api.Close)

	store := &fakeStore{token: "secret-token"}
	c, err := NewHTTPClient(api.URL+"/api", store)
	require.NoError(t, err)
	var fired atomic.Int32
	c.OnUnauthorized(func() { fired.Add(1) })

	err = c.Do(context.Background(), http.MethodGet, "/goals", nil, nil)
	require.Error(t, err)

	assert.Equal(t, "", foreignAuth.Load())
	assert.Equal(t, "secret-token", store.current())
	assert.Zero(t, fired.Load())
}
