package client

import (
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/goaltracker/internal/common"
	"github.com/dmitrijs2005/goaltracker/internal/logging"
)

// AttachToken returns req carrying token as a bearer credential. With an
// empty token req is returned unchanged; the request is never blocked.
// The original request is not modified.
func AttachToken(req *http.Request, token string) *http.Request {
	if token == "" {
		return req
	}
	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	return r
}

type hooks struct {
	mu  sync.RWMutex
	fns []func()
}

func (h *hooks) add(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *hooks) fire() {
	h.mu.RLock()
	fns := append([]func(){}, h.fns...)
	h.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// authTransport decorates a base RoundTripper with token attachment on the
// way out and session invalidation on 401 responses. Both apply only to
// requests addressed to host; anything else (a redirect target on another
// origin, say) is forwarded bare.
type authTransport struct {
	base         http.RoundTripper
	host         string
	store        TokenStore
	log          logging.Logger
	unauthorized *hooks
}

func newAuthTransport(base http.RoundTripper, host string, store TokenStore, log logging.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, host: host, store: store, log: log, unauthorized: &hooks{}}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := t.log.With("method", req.Method, "path", req.URL.Path, "request_id", req.Header.Get(common.RequestIDHeader))

	if req.URL.Host != t.host {
		log.Debug(ctx, "foreign host, forwarding without credentials", "host", req.URL.Host)
		return t.base.RoundTrip(req)
	}

	token, err := t.store.Token(ctx)
	if err != nil {
		log.Warn(ctx, "token lookup failed, sending request without credentials", "error", err)
		token = ""
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(AttachToken(req, token))
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "elapsed", time.Since(start))
		return nil, err
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		if err := t.store.ClearToken(ctx); err != nil {
			log.Error(ctx, "failed to clear session token", "error", err)
		} else {
			log.Info(ctx, "session token cleared after 401")
		}
		t.unauthorized.fire()
	}

	return resp, nil
}
