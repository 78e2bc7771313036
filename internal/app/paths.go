package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnv relocates every fittrack file when set.
	HomeEnv = "FITTRACK_HOME"

	appDirName     = "fittrack"
	dbFileName     = "fittrack.db"
	configFileName = "config.toml"
	logFileName    = "fittrack.log"
)

// Dir is $FITTRACK_HOME, or fittrack/ under the user config dir.
func Dir() (string, error) {
	if home := strings.TrimSpace(os.Getenv(HomeEnv)); home != "" {
		return home, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func DefaultDBPath() (string, error) {
	return inDir(dbFileName)
}

func DefaultConfigPath() (string, error) {
	return inDir(configFileName)
}

// DefaultLogPath is where `config set log_file default` points the log.
func DefaultLogPath() (string, error) {
	return inDir(logFileName)
}

func inDir(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
