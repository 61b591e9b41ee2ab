package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/inovacc/ghsearch/internal/core"
	"github.com/inovacc/ghsearch/internal/logging"
	"github.com/inovacc/ghsearch/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [username]",
	Short: "Print a user's public repositories",
	Long: `Fetch and print the public repositories of a GitHub user without the
interactive screen. With a username the name is remembered for the next run;
without one the last remembered username is used.`,
	Example: `  ghsearch list octocat
  ghsearch list --json
  ghsearch list torvalds --store sqlite`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd, logging.ToStderr)
		if err != nil {
			return err
		}
		defer d.Close()

		var username string
		if len(args) == 1 {
			username = args[0]
		}

		return runList(cmd.Context(), listRun{
			store:    d.store,
			client:   d.client,
			logger:   d.logger,
			username: username,
			out:      cmd.OutOrStdout(),
			asJSON:   listJSON,
		})
	},
}

type listRun struct {
	store    core.PreferenceStore
	client   core.RepositoryClient
	logger   *logrus.Logger
	username string
	out      io.Writer
	asJSON   bool
}

// printPresenter renders resolved repositories to a writer.
type printPresenter struct {
	out    io.Writer
	asJSON bool
	err    error
}

func (p *printPresenter) ShowRepositories(_ string, repos []model.Repository) {
	p.err = printRepositories(p.out, repos, p.asJSON)
}

// lastNotice keeps the most recent notification; list reports it as the
// command error.
type lastNotice struct {
	n *core.Notification
}

func (l *lastNotice) Notify(n core.Notification) {
	l.n = &n
}

// runList drives one fetch through the retrieval flow and prints the result.
func runList(ctx context.Context, r listRun) error {
	presenter := &printPresenter{out: r.out, asJSON: r.asJSON}
	notices := &lastNotice{}

	flow, err := core.NewFlow(core.Options{
		Store:     r.store,
		Client:    r.client,
		Presenter: presenter,
		Notifier:  notices,
		Launcher:  newLauncher(false),
		Logger:    r.logger,
	})
	if err != nil {
		return err
	}

	var fetch *core.Fetch

	if r.username != "" {
		fetch, err = flow.Submit(ctx, r.username)
		if err != nil {
			return err
		}
	} else {
		_, fetch = flow.Restore(ctx)
		if fetch == nil {
			return fmt.Errorf("%w: pass a username, no previous search is stored", core.ErrUsernameRequired)
		}
	}

	result := fetch.Wait()
	flow.Resolve(result)

	if !result.OK() {
		msg := core.MsgFetchFailed
		if notices.n != nil {
			msg = notices.n.Message
		}

		return fmt.Errorf("%s: %w", msg, result.Err)
	}

	return presenter.err
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print repositories as JSON")
}
