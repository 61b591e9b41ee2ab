package cmd

import (
	"fmt"

	"github.com/inovacc/ghsearch/internal/logging"
	"github.com/inovacc/ghsearch/internal/model"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ghsearch configuration",
	Long: `Commands for inspecting ghsearch configuration.

Settings are read from config.yaml in the data directory, GHSEARCH_*
environment variables and the global flags, in increasing precedence.

Available Commands:
  show      Print the effective configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration and the remembered username",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd, logging.ToStderr)
		if err != nil {
			return err
		}
		defer d.Close()

		username, err := d.store.Get(model.KeyUserName)
		if err != nil {
			return fmt.Errorf("failed to read stored username: %w", err)
		}

		if username == "" {
			username = "(none)"
		}

		logFile := d.cfg.LogFile
		if logFile == "" {
			logFile = "(default)"
		}

		items := map[string]string{
			"data_dir":   d.cfg.DataDir,
			"store":      d.cfg.Store,
			"api_url":    d.cfg.APIURL,
			"log_level":  d.cfg.LogLevel,
			"log_format": d.cfg.LogFormat,
			"log_file":   logFile,
			"username":   username,
		}

		printInfoBox(cmd.OutOrStdout(), "ghsearch configuration", items,
			[]string{"data_dir", "store", "api_url", "log_level", "log_format", "log_file", "username"})

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
