//go:build !windows

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/adrg/xdg"
	"github.com/momorph/shortpwd/internal/config"
	clierrors "github.com/momorph/shortpwd/internal/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetsSrc = "/home/alice/projects/widgets/src"

type fakeEnv struct {
	fs    afero.Fs
	width int
	cwd   string
	home  string
}

func newFakeEnv(t *testing.T, dirs []string, files ...string) *fakeEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0755))
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, nil, 0644))
	}
	return &fakeEnv{fs: fs, width: 100, cwd: widgetsSrc, home: "/home/alice"}
}

func (f *fakeEnv) environment() environment {
	return environment{
		width: func() (int, bool) { return f.width, f.width > 0 },
		home: func() (string, error) {
			if f.home == "" {
				return "", clierrors.ErrNoHome
			}
			return f.home, nil
		},
		getwd: func() (string, error) {
			if f.cwd == "" {
				return "", errors.New("getwd: no such file or directory")
			}
			return f.cwd, nil
		},
		color: func() bool { return false },
		fs:    f.fs,
	}
}

// resetFlags restores every flag to its default so runs do not leak into
// each other through the package-level command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvStopEarly, config.EnvFactor, config.EnvStyle, config.EnvAnchors} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, f *fakeEnv, args ...string) (stdout, stderr string, code clierrors.ExitCode) {
	t.Helper()

	saved := env
	env = f.environment()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		env = saved
		resetFlags(rootCmd)
	})

	var out, errOut bytes.Buffer
	code = run(&out, &errOut, args)
	return out.String(), errOut.String(), code
}

func TestRenderFullyAbbreviated(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{widgetsSrc})

	out, errOut, code := execute(t, f)
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Equal(t, "~/p/w/<b>src</b>\n", out)
	assert.Empty(t, errOut)
}

func TestRenderStopEarlyFits(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{widgetsSrc})

	out, _, code := execute(t, f, "--stop-early")
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Equal(t, "~/projects/widgets/<b>src</b>\n", out)
}

func TestRenderStopEarlyNarrowTerminal(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{widgetsSrc})
	f.width = 40

	// budget 30: the full path (31) does not fit, "p/widgets/src" (13) does
	out, _, _ := execute(t, f, "-s", "-f", "0.75")
	assert.Equal(t, "~/p/widgets/<b>src</b>\n", out)

	// budget 20: the home prefix is not counted against the budget
	out, _, _ = execute(t, f, "-s", "-f", "0.5")
	assert.Equal(t, "~/p/widgets/<b>src</b>\n", out)

	// budget 10: "p/w/src" (7) needs both steps
	out, _, _ = execute(t, f, "-s", "-f", "0.25")
	assert.Equal(t, "~/p/w/<b>src</b>\n", out)
}

func TestRenderStopEarlyFromEnv(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv(config.EnvStopEarly, "1")
	f := newFakeEnv(t, []string{widgetsSrc})

	out, _, _ := execute(t, f)
	assert.Equal(t, "~/projects/widgets/<b>src</b>\n", out)

	// the flag wins over the environment
	out, _, _ = execute(t, f, "--stop-early=false")
	assert.Equal(t, "~/p/w/<b>src</b>\n", out)
}

func TestRenderKeepsAnchors(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{widgetsSrc}, "/home/alice/projects/go.mod")

	out, _, _ := execute(t, f)
	assert.Equal(t, "~/projects/w/<b>src</b>\n", out)
}

func TestRenderExtraAnchor(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{widgetsSrc}, "/home/alice/projects/widgets/.workspace")

	out, _, _ := execute(t, f)
	assert.Equal(t, "~/p/w/<b>src</b>\n", out)

	out, _, _ = execute(t, f, "--anchor", ".workspace")
	assert.Equal(t, "~/p/widgets/<b>src</b>\n", out)

	t.Setenv(config.EnvAnchors, ".workspace")
	out, _, _ = execute(t, f)
	assert.Equal(t, "~/p/widgets/<b>src</b>\n", out)
}

func TestRenderOutsideHome(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{"/var/log/app"})
	f.cwd = "/var/log/app"

	out, _, _ := execute(t, f)
	assert.Equal(t, "/v/l/<b>app</b>\n", out)
}

func TestRenderHomeItself(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{"/home/alice"})
	f.cwd = "/home/alice"

	out, _, _ := execute(t, f)
	assert.Equal(t, "<b>~</b>\n", out)
}

func TestRenderNothingToShorten(t *testing.T) {
	clearSettingsEnv(t)

	f := newFakeEnv(t, []string{"/home/alice/projects"})
	f.cwd = "/home/alice/projects"
	out, _, _ := execute(t, f)
	assert.Equal(t, "~/<b>projects</b>\n", out)

	f = newFakeEnv(t, nil)
	f.cwd = "/"
	out, _, _ = execute(t, f)
	assert.Equal(t, "<b>/</b>\n", out)
}

func TestRenderStyles(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{widgetsSrc})

	out, _, _ := execute(t, f, "--style", "plain")
	assert.Equal(t, "~/p/w/src\n", out)

	// color is off in the fake environment
	out, _, _ = execute(t, f, "--style", "auto")
	assert.Equal(t, "~/p/w/src\n", out)

	out, _, _ = execute(t, f, "--style", "ansi")
	assert.Contains(t, out, "\x1b[1m")
	assert.NotContains(t, out, "<b>")
}

func TestRenderPathOverride(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, []string{"/var/log/app"})
	f.cwd = ""

	out, _, _ := execute(t, f, "--path", "/var/log/app")
	assert.Equal(t, "/v/l/<b>app</b>\n", out)
}

func TestRenderUnknownWidthIsEmpty(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, nil)
	f.width = 0
	f.cwd = ""
	f.home = ""

	out, errOut, code := execute(t, f)
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Equal(t, "\n", out)
	assert.Empty(t, errOut)
}

func TestRenderFailuresPrintPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *fakeEnv)
	}{
		{name: "unlistable directory", mutate: func(f *fakeEnv) { f.cwd = "/home/alice/ghost/dir/leaf" }},
		{name: "no home", mutate: func(f *fakeEnv) { f.home = "" }},
		{name: "no working directory", mutate: func(f *fakeEnv) { f.cwd = "" }},
		{name: "relative home", mutate: func(f *fakeEnv) { f.home = "alice" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSettingsEnv(t)
			f := newFakeEnv(t, []string{widgetsSrc})
			tt.mutate(f)

			out, errOut, code := execute(t, f)
			assert.Equal(t, clierrors.ExitSuccess, code)
			assert.Equal(t, clierrors.Placeholder+"\n", out)
			assert.Empty(t, errOut)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "malformed factor", args: []string{"--factor", "wide"}},
		{name: "zero factor", args: []string{"--factor", "0"}},
		{name: "unknown style", args: []string{"--style", "html"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "positional argument", args: []string{"somewhere"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSettingsEnv(t)
			f := newFakeEnv(t, []string{widgetsSrc})

			out, errOut, code := execute(t, f, tt.args...)
			assert.Equal(t, clierrors.ExitUsageError, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error:")
		})
	}
}

func TestUsageErrorStackUnderDebug(t *testing.T) {
	clearSettingsEnv(t)
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	f := newFakeEnv(t, []string{widgetsSrc})

	_, errOut, code := execute(t, f, "--style", "html")
	assert.Equal(t, clierrors.ExitUsageError, code)
	assert.NotContains(t, errOut, "Stack trace:")

	_, errOut, code = execute(t, f, "--debug", "--style", "html")
	assert.Equal(t, clierrors.ExitUsageError, code)
	assert.Contains(t, errOut, "Technical details:")
	assert.Contains(t, errOut, "Stack trace:")
	assert.Contains(t, errOut, "loadSettings")
}

func TestInvalidEnvIsUsageError(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv(config.EnvFactor, "wide")
	f := newFakeEnv(t, []string{widgetsSrc})

	out, errOut, code := execute(t, f)
	assert.Equal(t, clierrors.ExitUsageError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, config.EnvFactor)
}

func TestAnchorsCommand(t *testing.T) {
	clearSettingsEnv(t)
	f := newFakeEnv(t, nil)

	out, _, code := execute(t, f, "anchors")
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Contains(t, out, ".git\n")
	assert.Contains(t, out, "go.mod\n")
	assert.NotContains(t, out, ".workspace")

	out, _, _ = execute(t, f, "anchors", "--anchor", ".workspace")
	assert.Contains(t, out, ".workspace\n")
}

func TestVersionCommand(t *testing.T) {
	clearSettingsEnv(t)

	out, _, code := execute(t, newFakeEnv(t, nil), "version")
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Go version:")
}

func TestCompletionCommand(t *testing.T) {
	clearSettingsEnv(t)

	out, _, code := execute(t, newFakeEnv(t, nil), "completion", "bash")
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Contains(t, out, "shortpwd")
}

func TestHelp(t *testing.T) {
	clearSettingsEnv(t)

	out, _, code := execute(t, newFakeEnv(t, nil), "--help")
	assert.Equal(t, clierrors.ExitSuccess, code)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--stop-early")
	assert.Contains(t, out, "SHORTPWD_FACTOR")
	assert.NotContains(t, out, "--path")
}
