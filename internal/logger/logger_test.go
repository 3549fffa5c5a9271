package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/momorph/shortpwd/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithoutDebugIsSilent(t *testing.T) {
	require.NoError(t, Init(false))

	assert.Equal(t, zerolog.Disabled, zerolog.GlobalLevel())
	assert.Equal(t, zerolog.Disabled, Log.GetLevel())

	// must not panic on the no-op logger
	Debug("debug %s", "message")
	Info("info")
	Error("failed", errors.New("boom"))

	assert.NoError(t, Close())
}

func TestInitDebugWritesLogFile(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	require.NoError(t, Init(true))
	Info("rendered %q", "~/p/src")
	require.NoError(t, Close())

	entries, err := os.ReadDir(config.GetLogsDir())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(config.GetLogsDir(), entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `rendered \"~/p/src\"`)
	assert.Contains(t, string(data), config.AppName)

	// closed logger is a no-op again
	assert.Equal(t, zerolog.Disabled, Log.GetLevel())
	assert.NoError(t, Close())
}
