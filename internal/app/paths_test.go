package app_test

import (
	"path/filepath"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeEnvRelocatesFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv(app.HomeEnv, home)

	dbPath, err := app.DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "fittrack.db"), dbPath)

	cfgPath, err := app.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.toml"), cfgPath)

	var cfg app.Config
	require.NoError(t, cfg.Set("log_file", "default"))
	assert.Equal(t, filepath.Join(home, "fittrack.log"), cfg.LogFile)
}

func TestEnsureDirCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "fittrack.db")
	require.NoError(t, app.EnsureDir(path))
	assert.DirExists(t, filepath.Dir(path))
}
