package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogBackend_EveryLevelCarriesItsAttrs(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", FormatText, &buf)
	require.NoError(t, err)
	ctx := context.Background()

	log.Debug(ctx, "token lookup", "path", "/goals")
	log.Info(ctx, "session cleared", "status", 401)
	log.Warn(ctx, "store unavailable", "attempt", 2)
	log.Error(ctx, "clear failed", "kind", "network")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=\"token lookup\"", "path=/goals",
		"level=INFO", "msg=\"session cleared\"", "status=401",
		"level=WARN", "msg=\"store unavailable\"", "attempt=2",
		"level=ERROR", "msg=\"clear failed\"", "kind=network",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogBackend_WithIsScopedToChild(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", FormatJSON, &buf)
	require.NoError(t, err)
	ctx := context.Background()

	child := log.With("component", "session_store")
	child.Info(ctx, "state changed", "state", "authenticated")
	require.Contains(t, buf.String(), `"component":"session_store"`)
	assert.Contains(t, buf.String(), `"state":"authenticated"`)

	buf.Reset()
	log.Info(ctx, "parent line")
	assert.NotContains(t, buf.String(), "session_store")
}

func TestSlogBackend_FilteredLevelWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("error", FormatText, &buf)
	require.NoError(t, err)

	log.Debug(context.Background(), "a")
	log.Info(context.Background(), "b")
	log.Warn(context.Background(), "c")
	assert.Empty(t, buf.String())
}

func TestSlogBackend_NilContextTolerated(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", FormatText, &buf)
	require.NoError(t, err)

	//nolint:staticcheck // nil context is accepted on purpose
	require.NotPanics(t, func() { log.Info(nil, "no ctx") })
	assert.Contains(t, buf.String(), "no ctx")

	require.NotPanics(t, func() { Nop().With("k", "v").Warn(context.TODO(), "dropped") })
}
