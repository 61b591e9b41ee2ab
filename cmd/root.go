package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghsearch/internal/application"
	"github.com/inovacc/ghsearch/internal/cli"
	"github.com/inovacc/ghsearch/internal/config"
	"github.com/inovacc/ghsearch/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the interactive screen needs a terminal; use 'ghsearch list' instead")

var rootCmd = &cobra.Command{
	Use:   application.AppName + " [username]",
	Short: "Browse a GitHub user's public repositories",
	Long: `ghsearch lists the public repositories of a GitHub user. The last username
you searched for is remembered and loaded again on the next start.

In the list, press enter or o to open a repository in the browser, s to copy
its link to the clipboard and / to filter.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return errNoTerminal
		}

		d, err := loadDeps(cmd, logging.ToFile)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var username string
		if len(args) == 1 {
			username = args[0]
		}

		m, err := cli.NewSearchModel(ctx, cli.SearchOptions{
			Store:    d.store,
			Client:   d.client,
			Launcher: newLauncher(true),
			Logger:   d.logger,
			Username: username,
		})
		if err != nil {
			return err
		}

		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return err
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}
