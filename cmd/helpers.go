package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/inovacc/ghsearch/internal/config"
	"github.com/inovacc/ghsearch/internal/core"
	"github.com/inovacc/ghsearch/internal/ghclient"
	"github.com/inovacc/ghsearch/internal/logging"
	"github.com/inovacc/ghsearch/internal/model"
	"github.com/inovacc/ghsearch/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newLauncher builds the launcher used by the commands. Tests replace it.
var newLauncher = func(quiet bool) core.Launcher {
	return core.NewSystemLauncher(quiet)
}

// deps are the collaborators shared by the commands that talk to GitHub or
// the preference store.
type deps struct {
	cfg    *config.Config
	logger *logrus.Logger
	store  store.Store
	client *ghclient.Client

	logCloser io.Closer
}

func loadDeps(cmd *cobra.Command, dest logging.Destination) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(cfg, dest)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg, model.PreferenceStoreName)
	if err != nil {
		_ = logCloser.Close()

		return nil, err
	}

	client, err := ghclient.New(cfg.APIURL, nil)
	if err != nil {
		_ = st.Close()
		_ = logCloser.Close()

		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"store":    cfg.Store,
		"data_dir": cfg.DataDir,
		"api_url":  cfg.APIURL,
	}).Debug("dependencies ready")

	return &deps{cfg: cfg, logger: logger, store: st, client: client, logCloser: logCloser}, nil
}

func (d *deps) Close() {
	if err := d.store.Close(); err != nil {
		d.logger.WithError(err).Warn("failed to close preference store")
	}

	_ = d.logCloser.Close()
}

// descriptionWidth bounds the description column of the repository table
const descriptionWidth = 60

// printRepositories writes repos as an aligned table, or as a JSON array
// when asJSON is set.
func printRepositories(w io.Writer, repos []model.Repository, asJSON bool) error {
	if asJSON {
		if repos == nil {
			repos = []model.Repository{}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(repos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tLANGUAGE\tSTARS\tURL\tDESCRIPTION")

	for _, r := range repos {
		name := r.Name
		if r.Fork {
			name += " (fork)"
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			name,
			orDash(r.Language),
			strconv.Itoa(r.Stars),
			r.HTMLURL,
			orDash(truncateString(r.Description, descriptionWidth)),
		)
	}

	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printInfoBox prints a box with a title and one "label: value" line per
// entry of order.
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	_, _ = fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")

	for _, key := range order {
		val, ok := items[key]
		if !ok {
			continue
		}

		content := truncateString(fmt.Sprintf("  %s: %s", key, val), boxWidth-2)

		padding := boxWidth - 2 - len([]rune(content))
		if padding < 0 {
			padding = 0
		}

		_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
	}

	_, _ = fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
}
