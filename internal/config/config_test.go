// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blochsphere/bloch"
	"github.com/katalvlaran/blochsphere/internal/config"
	"github.com/katalvlaran/blochsphere/matrix"
)

// unset clears a key for the duration of the test.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		old, had := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, old)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

var keys = []string{"BLOCH_LOG_LEVEL", "BLOCH_LOG_PRETTY", "BLOCH_PRECISION", "BLOCH_EPSILON"}

func TestLoad_Defaults(t *testing.T) {
	unset(t, keys...)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.LogPretty)
	require.Equal(t, bloch.DefaultPrecision, cfg.Precision)
	require.Equal(t, matrix.DefaultEpsilon, cfg.Epsilon)
	require.Len(t, cfg.MatrixOptions(), 1)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BLOCH_LOG_LEVEL", "debug")
	t.Setenv("BLOCH_LOG_PRETTY", "true")
	t.Setenv("BLOCH_PRECISION", "5")
	t.Setenv("BLOCH_EPSILON", "1e-6")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, &config.Config{LogLevel: "debug", LogPretty: true, Precision: 5, Epsilon: 1e-6}, cfg)
}

func TestLoad_MalformedFallsBack(t *testing.T) {
	t.Setenv("BLOCH_LOG_PRETTY", "maybe")
	t.Setenv("BLOCH_PRECISION", "three")
	unset(t, "BLOCH_LOG_LEVEL", "BLOCH_EPSILON")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.False(t, cfg.LogPretty)
	require.Equal(t, bloch.DefaultPrecision, cfg.Precision)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("BLOCH_PRECISION", "40")
	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("BLOCH_PRECISION", "3")
	t.Setenv("BLOCH_EPSILON", "-1")
	_, err = config.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_DotEnvFile(t *testing.T) {
	unset(t, keys...)
	t.Setenv("BLOCH_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "bloch.env")
	require.NoError(t, os.WriteFile(path, []byte("BLOCH_PRECISION=6\nBLOCH_LOG_LEVEL=error\n"), 0o600))
	// godotenv sets BLOCH_PRECISION for the process; restore it afterwards.
	unset(t, "BLOCH_PRECISION")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Precision)
	// The environment wins over the file.
	require.Equal(t, "warn", cfg.LogLevel)
}
