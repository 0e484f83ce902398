package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/goaltracker/internal/client/client"
	"github.com/dmitrijs2005/goaltracker/internal/client/storage"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fakeAPI is a chi-routed stand-in for the goaltracker REST API.
type fakeAPI struct {
	router *chi.Mux
	server *httptest.Server
	hits   atomic.Int32
	// lastAuth is the Authorization header of the most recent request.
	lastAuth atomic.Value
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{router: chi.NewRouter()}
	f.lastAuth.Store("")

	root := chi.NewRouter()
	root.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.hits.Add(1)
			f.lastAuth.Store(r.Header.Get("Authorization"))
			next.ServeHTTP(w, r)
		})
	})
	root.Mount("/api", f.router)

	f.server = httptest.NewServer(root)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) baseURL() string {
	return f.server.URL + "/api"
}

func (f *fakeAPI) authHeader() string {
	return f.lastAuth.Load().(string)
}

// newHTTPClient wires a real HTTPClient and an in-memory token store
// holding token.
func (f *fakeAPI) newHTTPClient(t *testing.T, token string) (*client.HTTPClient, *storage.MemoryTokenStore) {
	t.Helper()

	store := storage.NewMemoryTokenStore()
	if token != "" {
		require.NoError(t, store.SetToken(t.Context(), token))
	}
	c, err := client.NewHTTPClient(f.baseURL(), store, client.WithTimeout(5*time.Second))
	require.NoError(t, err)
	return c, store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requireBearer rejects requests without a token signed by testSecret.
func requireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No token provided"})
			return
		}
		_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			return
		}
		next(w, r)
	}
}

func mintToken(t *testing.T, subject string) string {
	t.Helper()

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}
