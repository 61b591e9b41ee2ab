package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/inovacc/ghsearch/internal/ghclient"
	"github.com/inovacc/ghsearch/internal/model"
	"github.com/sirupsen/logrus"
)

// PreferenceStore remembers the last submitted username.
type PreferenceStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// RepositoryClient lists a user's repositories.
type RepositoryClient interface {
	FetchRepositoriesForUser(ctx context.Context, username string) ([]model.Repository, error)
}

// Presenter renders the repositories of a successful fetch.
type Presenter interface {
	ShowRepositories(username string, repos []model.Repository)
}

// Notifier shows transient messages.
type Notifier interface {
	Notify(n Notification)
}

// Launcher performs the platform actions offered on each repository.
type Launcher interface {
	OpenURL(url string) error
	ShareText(text string) error
}

// State is the retrieval flow state
type State int

const (
	StateIdle State = iota
	StateValidating
	StateFetching
	StateResolvedSuccess
	StateResolvedFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateFetching:
		return "fetching"
	case StateResolvedSuccess:
		return "resolved-success"
	case StateResolvedFailure:
		return "resolved-failure"
	}

	return fmt.Sprintf("state(%d)", int(s))
}

// Options configures a Flow. Store, Client, Presenter, Notifier and Launcher are required.
type Options struct {
	Store     PreferenceStore
	Client    RepositoryClient
	Presenter Presenter
	Notifier  Notifier
	Launcher  Launcher
	Logger    *logrus.Logger

	// OnTransition, if set, observes every state change
	OnTransition func(from, to State)
}

// Result is the outcome of one fetch: either Repositories or Err is meaningful.
type Result struct {
	RequestID    string
	Username     string
	Repositories []model.Repository
	Err          error
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Fetch is a dispatched request whose Result becomes available once.
type Fetch struct {
	RequestID string
	Username  string

	done   chan struct{}
	result Result
}

// Done is closed when the result is available.
func (f *Fetch) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the request completes and returns its result.
func (f *Fetch) Wait() Result {
	<-f.done

	return f.result
}

// Flow orchestrates username submission, persistence and repository retrieval.
type Flow struct {
	store        PreferenceStore
	client       RepositoryClient
	presenter    Presenter
	notifier     Notifier
	launcher     Launcher
	logger       *logrus.Logger
	onTransition func(from, to State)

	mu       sync.Mutex
	state    State
	inFlight int
}

// NewFlow creates an idle flow.
func NewFlow(opts Options) (*Flow, error) {
	switch {
	case opts.Store == nil:
		return nil, errors.New("preference store is required")
	case opts.Client == nil:
		return nil, errors.New("repository client is required")
	case opts.Presenter == nil:
		return nil, errors.New("presenter is required")
	case opts.Notifier == nil:
		return nil, errors.New("notifier is required")
	case opts.Launcher == nil:
		return nil, errors.New("launcher is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Flow{
		store:        opts.Store,
		client:       opts.Client,
		presenter:    opts.Presenter,
		notifier:     opts.Notifier,
		launcher:     opts.Launcher,
		logger:       logger,
		onTransition: opts.OnTransition,
		state:        StateIdle,
	}, nil
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// InFlight returns the number of dispatched fetches not yet resolved.
func (f *Flow) InFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.inFlight
}

// Restore reads the stored username and, if there is one, dispatches a fetch
// for it. The preference is not rewritten. It returns "" and nil when nothing
// is stored.
func (f *Flow) Restore(ctx context.Context) (string, *Fetch) {
	username, err := f.store.Get(model.KeyUserName)
	if err != nil {
		f.logger.WithError(err).Warn("failed to read stored username")

		return "", nil
	}

	if strings.TrimSpace(username) == "" {
		f.logger.Debug("no stored username to restore")

		return "", nil
	}

	f.logger.WithField("username", username).Info("restoring last session")

	return username, f.dispatch(ctx, username)
}

// Submit validates input, persists it and dispatches a fetch for it. Empty
// or whitespace-only input emits the "username required" notification and
// returns ErrUsernameRequired without touching the store or the network.
func (f *Flow) Submit(ctx context.Context, input string) (*Fetch, error) {
	f.transition(StateValidating)

	username := strings.TrimSpace(input)
	if username == "" {
		f.settle()
		f.notifier.Notify(usernameRequired())

		return nil, ErrUsernameRequired
	}

	// The write completes before the request is dispatched
	if err := f.store.Set(model.KeyUserName, username); err != nil {
		f.logger.WithError(err).WithField("username", username).Warn("failed to persist username")
	}

	return f.dispatch(ctx, username), nil
}

// Resolve applies a fetch result. It must be called from the same goroutine
// that drives Submit and renders the UI.
func (f *Flow) Resolve(r Result) {
	f.mu.Lock()
	if f.inFlight > 0 {
		f.inFlight--
	}
	f.mu.Unlock()

	log := f.logger.WithFields(logrus.Fields{
		"request_id": r.RequestID,
		"username":   r.Username,
	})

	if r.Err != nil {
		f.transition(StateResolvedFailure)

		var statusErr *ghclient.StatusError
		if errors.As(r.Err, &statusErr) {
			log = log.WithField("status", statusErr.StatusCode)
		}

		log.WithError(r.Err).Warn("fetch failed")
		f.notifier.Notify(fetchFailed())
		f.settle()

		return
	}

	f.transition(StateResolvedSuccess)
	log.WithField("count", len(r.Repositories)).Info("repositories fetched")
	f.presenter.ShowRepositories(r.Username, r.Repositories)
	f.settle()
}

// OnItemSelected opens url in the browser.
func (f *Flow) OnItemSelected(url string) error {
	if err := f.launcher.OpenURL(url); err != nil {
		f.logger.WithError(err).WithField("url", url).Warn("failed to open url")
		f.notifier.Notify(openFailed(err))

		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	f.logger.WithField("url", url).Debug("opened url")

	return nil
}

// OnShareRequested shares exactly url as text.
func (f *Flow) OnShareRequested(url string) error {
	if err := f.launcher.ShareText(url); err != nil {
		f.logger.WithError(err).WithField("url", url).Warn("failed to share url")
		f.notifier.Notify(shareFailed(err))

		return fmt.Errorf("failed to share %s: %w", url, err)
	}

	f.logger.WithField("url", url).Debug("shared url")
	f.notifier.Notify(shared())

	return nil
}

func (f *Flow) dispatch(ctx context.Context, username string) *Fetch {
	fetch := &Fetch{
		RequestID: uuid.NewString(),
		Username:  username,
		done:      make(chan struct{}),
	}

	f.mu.Lock()
	f.inFlight++
	f.mu.Unlock()

	f.transition(StateFetching)

	f.logger.WithFields(logrus.Fields{
		"request_id": fetch.RequestID,
		"username":   username,
	}).Debug("fetch dispatched")

	go func() {
		repos, err := f.client.FetchRepositoriesForUser(ctx, username)

		fetch.result = Result{
			RequestID:    fetch.RequestID,
			Username:     username,
			Repositories: repos,
			Err:          err,
		}
		close(fetch.done)
	}()

	return fetch
}

// settle returns to Fetching while other requests are outstanding, Idle otherwise.
func (f *Flow) settle() {
	if f.InFlight() > 0 {
		f.transition(StateFetching)

		return
	}

	f.transition(StateIdle)
}

func (f *Flow) transition(to State) {
	f.mu.Lock()
	from := f.state
	f.state = to
	f.mu.Unlock()

	f.logger.WithFields(logrus.Fields{"from": from, "to": to}).Debug("state transition")

	if f.onTransition != nil {
		f.onTransition(from, to)
	}
}
