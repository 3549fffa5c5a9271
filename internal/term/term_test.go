package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSizeNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	w, h := GetSize(f)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestGetSizeNil(t *testing.T) {
	w, h := GetSize(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestColumnsFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
		ok    bool
	}{
		{name: "unset", value: "", want: 0, ok: false},
		{name: "number", value: "120", want: 120, ok: true},
		{name: "garbage", value: "wide", want: 0, ok: false},
		{name: "zero", value: "0", want: 0, ok: false},
		{name: "negative", value: "-5", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.value)
			got, ok := columnsFromEnv()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestColorEnabledNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout))
}

func TestColorEnabledFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, ColorEnabled(f))
}
