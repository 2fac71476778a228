package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jlrickert/datadigest/pkg/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, log.ParseLevel(in), in)
	}
}

func TestNewLogger_JSONAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := log.NewLogger(log.LoggerConfig{Out: &buf, Level: slog.LevelWarn, JSON: true, Version: "v0"})
	lg.Info("dropped")
	lg.Warn("kept", "k", 1)

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, `"msg":"kept"`)
	require.Contains(t, out, `"version":"v0"`)
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.False(t, log.HasLogger(ctx))
	require.Equal(t, slog.Default(), log.FromContext(ctx))

	lg, th := log.NewTestLogger(t)
	ctx = log.ContextWithLogger(ctx, lg)
	require.True(t, log.HasLogger(ctx))

	log.FromContext(ctx).Debug("hello", "n", 3)
	e := log.RequireEntry(t, th, func(e log.LoggedEntry) bool { return e.Msg == "hello" }, 0)
	require.Equal(t, int64(3), e.Attrs["n"])
}

func TestNopLogger(t *testing.T) {
	t.Parallel()
	require.False(t, log.NewNopLogger().Enabled(context.Background(), slog.LevelError))
}
