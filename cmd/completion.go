package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long:  "Generate the autocompletion script for shortpwd for the specified shell.",
	Example: `  # Bash
  source <(shortpwd completion bash)

  # Zsh
  shortpwd completion zsh > "${fpath[1]}/_shortpwd"

  # Fish
  shortpwd completion fish > ~/.config/fish/completions/shortpwd.fish

  # PowerShell
  shortpwd completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
}

var completionShells = []struct {
	name string
	gen  func(w io.Writer) error
}{
	{"bash", func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) }},
	{"zsh", func(w io.Writer) error { return rootCmd.GenZshCompletion(w) }},
	{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
	{"powershell", func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) }},
}

func init() {
	for _, shell := range completionShells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 "Generate the autocompletion script for " + shell.name,
			DisableFlagsInUseLine: true,
			Args:                  noArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)
}
