/*
Copyright © 2025 Sun Asterisk Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/momorph/shortpwd/internal/abbrev"
	"github.com/momorph/shortpwd/internal/anchor"
	"github.com/momorph/shortpwd/internal/config"
	clierrors "github.com/momorph/shortpwd/internal/errors"
	"github.com/momorph/shortpwd/internal/logger"
	"github.com/momorph/shortpwd/internal/render"
	"github.com/momorph/shortpwd/internal/term"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	debugMode    bool
	extraAnchors []string

	// Render flags
	stopEarly    bool
	factor       float64
	styleName    string
	pathOverride string
)

// environment is everything a render reads from the outside world.
type environment struct {
	width func() (int, bool)
	home  func() (string, error)
	getwd func() (string, error)
	color func() bool
	fs    afero.Fs
}

var env = environment{
	width: term.Width,
	home:  config.HomeDir,
	getwd: os.Getwd,
	color: func() bool { return term.ColorEnabled(os.Stderr) },
	fs:    afero.NewOsFs(),
}

// rootCmd renders the working directory when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "shortpwd",
	Short: "Print the working directory shortened for a shell prompt",
	Long: `Print the working directory shortened for a shell prompt.

Parent directories are cut to their first letter (two for dot-directories),
except for project roots: directories holding .git, go.mod, package.json and
similar markers keep their full name. The last directory is never shortened
and is marked bold. The home directory is shown as ~.

On any failure the placeholder ::::: is printed instead, so a prompt never
shows an error.

Environment:
  SHORTPWD_STOP_EARLY   default for --stop-early (true/false)
  SHORTPWD_FACTOR       default for --factor
  SHORTPWD_STYLE        default for --style
  SHORTPWD_ANCHORS      comma-separated extra marker names`,
	Example: `  shortpwd                    # Shorten every parent directory
  shortpwd --stop-early       # Shorten only until the path fits
  shortpwd -s -f 0.5          # Fit into half the terminal width
  PS1='$(shortpwd --style ansi) $ '`,
	Args:          noArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(debugMode)
	},
	RunE: runRender,
	// Enable command suggestions for typos
	SuggestionsMinimumDistance: 2,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to stderr and the log file")
	rootCmd.PersistentFlags().StringSliceVar(&extraAnchors, "anchor", nil, "Additional project marker name (repeatable)")

	rootCmd.Flags().BoolVarP(&stopEarly, "stop-early", "s", false, "Stop shortening as soon as the path fits")
	rootCmd.Flags().Float64VarP(&factor, "factor", "f", config.DefaultFactor, "Share of the terminal width the path may use")
	rootCmd.Flags().StringVar(&styleName, "style", string(render.Markup), "Marking of the last directory: markup, ansi, plain or auto")
	rootCmd.Flags().StringVar(&pathOverride, "path", "", "Render this path instead of the working directory")
	_ = rootCmd.Flags().MarkHidden("path")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(err, "invalid flag")
	})

	// Initialize custom help formatting
	InitHelp()
}

// Execute runs the root command and exits. A failed render still exits 0
// after printing the placeholder; only usage errors exit non-zero.
func Execute() {
	os.Exit(int(run(os.Stdout, os.Stderr, os.Args[1:])))
}

func run(stdout, stderr io.Writer, args []string) clierrors.ExitCode {
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	defer logger.Close()
	if err == nil {
		return clierrors.ExitSuccess
	}

	if clierrors.IsUsage(err) {
		msg := err.Error()
		if debugMode {
			msg = clierrors.FormatError(err, true)
		}
		fmt.Fprintf(stderr, "Error: %s\n", msg)
		return clierrors.ExitUsageError
	}

	logger.Error("render failed", err)
	fmt.Fprintln(stdout, clierrors.Placeholder)
	return clierrors.ExitSuccess
}

// usageError builds a usage error, with the call stack under --debug.
func usageError(err error, msg string) error {
	cliErr := clierrors.NewUsageError(err, msg)
	if debugMode {
		return cliErr.WithStackTrace()
	}
	return cliErr
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err, "invalid arguments")
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	out, err := renderWorkingDir(settings, env)
	if err != nil {
		return err
	}

	logger.Info("rendered %q", out)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// loadSettings applies flags on top of the environment defaults. Only flags
// set on the command line override the environment.
func loadSettings(flags *pflag.FlagSet) (*config.Settings, error) {
	settings, err := config.DefaultSettings()
	if err != nil {
		return nil, usageError(err, "invalid environment")
	}

	if flags.Changed("stop-early") {
		settings.StopEarly = stopEarly
	}
	if flags.Changed("factor") {
		settings.Factor = factor
	}
	if flags.Changed("style") {
		settings.Style = styleName
	}
	settings.ExtraAnchors = append(settings.ExtraAnchors, extraAnchors...)

	if err := settings.Validate(); err != nil {
		return nil, usageError(err, "invalid settings")
	}
	return settings, nil
}

// renderWorkingDir produces the prompt text. An unknown terminal width yields
// an empty string.
func renderWorkingDir(settings *config.Settings, env environment) (string, error) {
	width, ok := env.width()
	if !ok {
		logger.Debug("terminal width unknown, rendering nothing")
		return "", nil
	}
	budget := settings.Budget(width)

	cwd, err := workingDir(env)
	if err != nil {
		return "", err
	}
	path, err := abbrev.Split(cwd)
	if err != nil {
		return "", err
	}

	homeDir, err := env.home()
	if err != nil {
		return "", err
	}
	home, err := abbrev.Split(homeDir)
	if err != nil {
		return "", clierrors.Wrap(clierrors.ErrNoHome, err.Error())
	}

	// A home at the filesystem root would put every path "under home".
	anchoredToHome := len(home) > 1 && path.HasPrefix(home)

	logger.Log.Debug().
		Str("path", cwd).
		Int("width", width).
		Int("budget", budget).
		Bool("anchored_to_home", anchoredToHome).
		Bool("stop_early", settings.StopEarly).
		Msg("abbreviating")

	catalog := anchor.Default().With(settings.ExtraAnchors...)
	result, err := abbrev.Abbreviate(path, budget, abbrev.Options{
		AnchoredToHome: anchoredToHome,
		StopEarly:      settings.StopEarly,
		HomePrefix:     len(home),
	}, anchor.NewProber(env.fs, catalog))
	if err != nil {
		return "", err
	}
	if len(result) == 0 {
		// nothing was eligible for shortening: show the path as it is
		result = path
	}

	style, err := render.ParseStyle(settings.Style)
	if err != nil {
		return "", err
	}
	return render.Render(result, home, style.Resolve(env.color())), nil
}

func workingDir(env environment) (string, error) {
	if pathOverride != "" {
		return filepath.Abs(pathOverride)
	}
	cwd, err := env.getwd()
	if err != nil {
		return "", clierrors.Wrap(clierrors.ErrNoWorkingDir, err.Error())
	}
	return cwd, nil
}
