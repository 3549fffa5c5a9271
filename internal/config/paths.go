package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	clierrors "github.com/momorph/shortpwd/internal/errors"
)

// AppName names the state directory and log files.
const AppName = "shortpwd"

// GetStateDir returns the state directory path
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// GetLogsDir returns the logs directory path
func GetLogsDir() string {
	return filepath.Join(GetStateDir(), "logs")
}

// EnsureLogsDir creates the logs directory if it doesn't exist
func EnsureLogsDir() error {
	return os.MkdirAll(GetLogsDir(), 0700)
}

// HomeDir returns the invoking user's home directory.
func HomeDir() (string, error) {
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", clierrors.Wrap(clierrors.ErrNoHome, "resolving home")
	}
	return home, nil
}
