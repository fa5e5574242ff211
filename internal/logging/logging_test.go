package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/logging"
)

func TestNew_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "steps", 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.EqualValues(t, 4, rec["steps"])
}

func TestNew_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("nonsense", "text", &buf)
	logger.Debug("hidden")
	logger.Info("visible")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=visible")
}

func TestContextRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := logging.WithLogger(context.Background(), logger)
	require.Same(t, logger, logging.FromContext(ctx))
	require.Same(t, slog.Default(), logging.FromContext(context.Background()))
}
