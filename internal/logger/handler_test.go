package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrettyHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil))

	log.Debug("hidden")
	require.Empty(t, buf.String())

	log.With("request_id", "r-1").WithGroup("auth").Warn("request rejected", "reason", "expired", slog.Group("user", "name", "alice"))

	out := buf.String()
	require.Contains(t, out, "WARN")
	require.Contains(t, out, "request rejected")
	require.Contains(t, out, "request_id")
	require.Contains(t, out, "auth.reason")
	require.Contains(t, out, "auth.user.name")
	require.Contains(t, out, "alice")
}

func TestPrettyHandlerLevelOption(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.Debug("visible")
	require.Contains(t, buf.String(), "visible")
}
