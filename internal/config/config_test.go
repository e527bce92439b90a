package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/steward/errors"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STEWARD_ROOT", "")
	t.Setenv("STEWARD_LOG_LEVEL", "")
	t.Setenv("STEWARD_STREAM", "")
	os.Unsetenv("STEWARD_ROOT")
	os.Unsetenv("STEWARD_LOG_LEVEL")
	os.Unsetenv("STEWARD_STREAM")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "", cfg.Root)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.Stream)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STEWARD_ROOT", "/srv/ws")
	t.Setenv("STEWARD_LOG_LEVEL", "debug")
	t.Setenv("STEWARD_STREAM", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/srv/ws", cfg.Root)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Stream)
}

func TestLoad_EnvFile(t *testing.T) {
	// Registered first so the variables set by the env file are removed again.
	t.Setenv("STEWARD_ROOT", "")
	t.Setenv("STEWARD_LOG_LEVEL", "warn")
	os.Unsetenv("STEWARD_ROOT")

	path := filepath.Join(t.TempDir(), "steward.env")
	require.NoError(t, os.WriteFile(path, []byte("STEWARD_ROOT=/from/file\nSTEWARD_LOG_LEVEL=trace\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/from/file", cfg.Root)
	require.Equal(t, "warn", cfg.LogLevel, "existing variables win over the env file")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STEWARD-ROOT=/x\n"), 0o644))
	t.Chdir(dir)

	_, err := Load()
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("STEWARD_STREAM", "definitely")

	_, err := Load()
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}
