package cmd

import (
	"fmt"

	"github.com/momorph/shortpwd/internal/anchor"
	"github.com/spf13/cobra"
)

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "List the marker names that keep a directory unshortened",
	Example: `  shortpwd anchors                      # Built-in markers
  shortpwd anchors --anchor .workspace  # Including an extra marker`,
	Args: noArgs,
	RunE: runAnchors,
}

func init() {
	rootCmd.AddCommand(anchorsCmd)
}

func runAnchors(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	for _, name := range anchor.Default().With(settings.ExtraAnchors...).Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
