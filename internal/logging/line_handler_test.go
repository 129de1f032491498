package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := NewLineHandler(&buf, slog.LevelInfo)

	r := slog.NewRecord(time.Date(2026, 1, 2, 15, 4, 5, 123000000, time.UTC), slog.LevelInfo, "Savings-1000 - Deposit: $500.00", 0)
	r.AddAttrs(slog.String("account_id", "Savings-1000"))

	require.NoError(t, h.Handle(context.Background(), r))
	assert.Equal(t, "2026-01-02 15:04:05,123 - INFO - Savings-1000 - Deposit: $500.00\n", buf.String())
}

func TestLineHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLineHandler(&buf, slog.LevelWarn))

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), " - WARN - shown\n")
}

func TestLineHandler_NilLevelDefaultsToInfo(t *testing.T) {
	h := NewLineHandler(&bytes.Buffer{}, nil)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.Same(t, h, h.WithAttrs(nil))
	assert.Same(t, h, h.WithGroup("g"))
}

func TestSink_AppendsAndEchoes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.log")
	require.NoError(t, os.WriteFile(path, []byte("existing line\n"), 0o644))

	var console bytes.Buffer
	sink, err := OpenSink(path, &console, slog.LevelInfo)
	require.NoError(t, err)

	sink.Logger.Info("Checking-1001 - Withdrawal: $-120,000.00")
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "existing line\n")
	assert.Contains(t, string(content), " - INFO - Checking-1001 - Withdrawal: $-120,000.00\n")
	assert.Contains(t, console.String(), "Checking-1001 - Withdrawal")
}

func TestOpenSink_InvalidPath(t *testing.T) {
	_, err := OpenSink(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), nil, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open transaction log")
}
