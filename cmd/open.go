package cmd

import (
	"fmt"

	"github.com/inovacc/ghsearch/internal/core"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a repository page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newLauncher(false).OpenURL(args[0]); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", args[0])

		return nil
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <url>",
	Short: "Copy a repository link to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newLauncher(false).ShareText(args[0]); err != nil {
			return fmt.Errorf("failed to share link: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", core.MsgShared, args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(shareCmd)
}
