// Package session holds the current-user record shown by the terminal UI.
//
// The Store is created once per application, initialised with Init and torn
// down with Close. It caches the result of the "who am I" check for
// rendering only; the server stays authoritative for every request.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/goaltracker/internal/client/models"
	"github.com/dmitrijs2005/goaltracker/internal/logging"
)

type State int

const (
	StateInitial State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "initial"
	}
}

// Authenticator is the part of services.AuthService the store depends on.
type Authenticator interface {
	IsLoggedIn(ctx context.Context) bool
	CurrentUser(ctx context.Context) models.Result[models.User]
	Logout(ctx context.Context) models.Result[struct{}]
}

// Snapshot is a consistent copy of the store state.
type Snapshot struct {
	State   State
	User    *models.User
	Loading bool
	Error   string
}

func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

type Store struct {
	auth Authenticator
	log  logging.Logger

	mu     sync.Mutex
	state  State
	user   *models.User
	err    string
	gen    uint64
	inited bool
	closed bool
}

func New(auth Authenticator, log logging.Logger) *Store {
	return &Store{auth: auth, log: log.With("component", "session"), state: StateInitial}
}

// Init runs the initial session check. Calls after the first are no-ops,
// including ones that race with it.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.inited || s.state != StateInitial {
		s.mu.Unlock()
		return
	}
	s.inited = true
	s.mu.Unlock()

	s.Refresh(ctx)
}

// Refresh re-checks the session against the server. Without a stored
// token the store becomes anonymous and no request is made. A result that
// was superseded by a later Refresh, Logout or Close while in flight is
// dropped.
func (s *Store) Refresh(ctx context.Context) {
	if !s.auth.IsLoggedIn(ctx) {
		s.mu.Lock()
		if !s.closed {
			s.gen++
			s.setAnonymous("")
		}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	s.state = StateChecking
	s.err = ""
	s.mu.Unlock()

	res := s.auth.CurrentUser(ctx)

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		s.log.Debug(ctx, "discarding superseded session check")
		return
	}

	if res.Success {
		user := res.Data
		s.state = StateAuthenticated
		s.user = &user
		s.err = ""
		s.mu.Unlock()
		s.log.Info(ctx, "session restored", "user_id", user.ID)
		return
	}

	s.setAnonymous(res.Error)
	s.mu.Unlock()

	s.log.Info(ctx, "session check failed", "error", res.Error)
	if isAuthFailure(res.Error) {
		// The transport already clears the token on 401; this covers
		// failures that reach here by another path.
		if out := s.auth.Logout(ctx); !out.Success {
			s.log.Warn(ctx, "failed to clear rejected session", "error", out.Error)
		}
	}
}

// Logout clears the cached user and the stored token.
func (s *Store) Logout(ctx context.Context) models.Result[struct{}] {
	s.mu.Lock()
	s.gen++
	if !s.closed {
		s.setAnonymous("")
	}
	s.mu.Unlock()

	return s.auth.Logout(ctx)
}

// Invalidate drops an authenticated session after the server rejected its
// token. It is registered as the HTTP client's unauthorized hook and so runs
// on whatever goroutine issued the request.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state != StateAuthenticated {
		return
	}
	s.gen++
	s.setAnonymous("")
}

// Close detaches the store; in-flight and later results are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state, Loading: s.state == StateChecking, Error: s.err}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// setAnonymous must be called with mu held.
func (s *Store) setAnonymous(errMsg string) {
	s.state = StateAnonymous
	s.user = nil
	s.err = errMsg
}

var authMarkers = []string{"authentication", "unauthorized", "not authenticated", "token"}

func isAuthFailure(msg string) bool {
	m := strings.ToLower(msg)
	for _, marker := range authMarkers {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}
