package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"MAZE_STRATEGY", "MAZE_LOG_LEVEL", "MAZE_LOG_FORMAT", "MAZE_ADDR", "MAZE_BASE_URL", "MAZE_GIN_MODE", "MAZE_SOLVE_TIMEOUT", "MAZE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("MAZE_STRATEGY", "dfs")
	t.Setenv("MAZE_LOG_LEVEL", "DEBUG")
	t.Setenv("MAZE_LOG_FORMAT", "json")
	t.Setenv("MAZE_ADDR", ":9090")
	t.Setenv("MAZE_SOLVE_TIMEOUT", "250ms")
	t.Setenv("MAZE_MAX_BODY_BYTES", "4096")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, "dfs", cfg.Strategy)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, 250*time.Millisecond, cfg.SolveTimeout)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"MAZE_LOG_LEVEL":      "loud",
		"MAZE_LOG_FORMAT":     "xml",
		"MAZE_SOLVE_TIMEOUT":  "soon",
		"MAZE_MAX_BODY_BYTES": "-1",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := config.FromEnv()
			require.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_BASE_URL=/maze\n"), 0o600))
	t.Setenv("MAZE_BASE_URL", "")
	os.Unsetenv("MAZE_BASE_URL")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/maze", cfg.BaseURL)
}
