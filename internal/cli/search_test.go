package cli

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghsearch/internal/core"
	"github.com/inovacc/ghsearch/internal/ghclient"
	"github.com/inovacc/ghsearch/internal/logging"
	"github.com/inovacc/ghsearch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu     sync.Mutex
	values map[string]string
	sets   int
}

func (s *memStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[key], nil
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets++
	s.values[key] = value

	return nil
}

type stubClient struct {
	mu    sync.Mutex
	calls []string
	repos []model.Repository
	err   error
}

func (c *stubClient) FetchRepositoriesForUser(_ context.Context, username string) ([]model.Repository, error) {
	c.mu.Lock()
	c.calls = append(c.calls, username)
	c.mu.Unlock()

	return c.repos, c.err
}

func (c *stubClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.calls)
}

type stubLauncher struct {
	opened []string
	shared []string
}

func (l *stubLauncher) OpenURL(url string) error {
	l.opened = append(l.opened, url)

	return nil
}

func (l *stubLauncher) ShareText(text string) error {
	l.shared = append(l.shared, text)

	return nil
}

type fixture struct {
	store    *memStore
	client   *stubClient
	launcher *stubLauncher
}

func newFixture() *fixture {
	return &fixture{
		store:    &memStore{values: make(map[string]string)},
		client:   &stubClient{},
		launcher: &stubLauncher{},
	}
}

func (f *fixture) model(t *testing.T, username string) *SearchModel {
	t.Helper()

	m, err := NewSearchModel(context.Background(), SearchOptions{
		Store:    f.store,
		Client:   f.client,
		Launcher: f.launcher,
		Logger:   logging.Discard(),
		Username: username,
	})
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return m
}

var helloWorld = model.Repository{
	ID:       1,
	Name:     "Hello-World",
	FullName: "octocat/Hello-World",
	HTMLURL:  "https://github.com/octocat/Hello-World",
	Language: "Go",
	Stars:    42,
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fetchResult runs cmd, expanding batches, and returns the fetch result it produces.
func fetchResult(t *testing.T, cmd tea.Cmd) fetchResultMsg {
	t.Helper()

	var found []fetchResultMsg

	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			for _, inner := range msg {
				run(inner)
			}
		case fetchResultMsg:
			found = append(found, msg)
		}
	}

	run(cmd)
	require.Len(t, found, 1, "expected exactly one fetch result")

	return found[0]
}

func TestNewSearchModel_RestoresStoredUsername(t *testing.T) {
	f := newFixture()
	f.store.values[model.KeyUserName] = "torvalds"
	f.client.repos = []model.Repository{{ID: 2, Name: "linux", FullName: "torvalds/linux", HTMLURL: "https://github.com/torvalds/linux"}}

	m := f.model(t, "")

	assert.Equal(t, "torvalds", m.InputValue(), "input is pre-filled")
	require.NotNil(t, m.startup, "fetch is triggered automatically")

	m.Update(fetchResult(t, m.startup))

	assert.Equal(t, []string{"torvalds"}, f.client.calls)
	assert.Equal(t, "torvalds", m.Username())
	require.Len(t, m.Repositories(), 1)
	assert.Equal(t, "https://github.com/torvalds/linux", m.Repositories()[0].HTMLURL)
	assert.Zero(t, f.store.sets)
	assert.Contains(t, m.View(), "linux")
}

func TestNewSearchModel_NothingStored(t *testing.T) {
	f := newFixture()

	m := f.model(t, "")

	assert.Empty(t, m.InputValue())
	assert.Nil(t, m.startup)
	assert.NotNil(t, m.Init())
	assert.Zero(t, f.client.callCount())
	assert.Contains(t, m.View(), "No repositories to show")
}

func TestNewSearchModel_CommandLineUsername(t *testing.T) {
	f := newFixture()
	f.store.values[model.KeyUserName] = "torvalds"
	f.client.repos = []model.Repository{helloWorld}

	m := f.model(t, "octocat")

	assert.Equal(t, "octocat", m.InputValue())
	assert.Equal(t, "octocat", f.store.values[model.KeyUserName])

	m.Update(fetchResult(t, m.startup))

	assert.Equal(t, []string{"octocat"}, f.client.calls)
	assert.Equal(t, "octocat", m.Username())
}

func TestSearchModel_EnterWithEmptyInput(t *testing.T) {
	f := newFixture()
	m := f.model(t, "")

	m.input.SetValue("   ")
	m.Update(key("enter"))

	require.NotNil(t, m.Notice())
	assert.Equal(t, core.NotificationUsernameRequired, m.Notice().Kind)
	assert.Zero(t, f.client.callCount())
	assert.Zero(t, f.store.sets)
	assert.Contains(t, m.View(), "username required")
}

func TestSearchModel_SubmitOpenAndShare(t *testing.T) {
	f := newFixture()
	f.client.repos = []model.Repository{helloWorld}
	m := f.model(t, "")

	m.input.SetValue("octocat")
	_, cmd := m.Update(key("enter"))

	assert.Equal(t, "octocat", f.store.values[model.KeyUserName], "persisted on submit")

	m.Update(fetchResult(t, cmd))

	require.Len(t, m.Repositories(), 1)
	assert.Equal(t, focusList, m.focus, "focus moves to the results")

	m.Update(key("o"))
	assert.Equal(t, []string{"https://github.com/octocat/Hello-World"}, f.launcher.opened)

	m.Update(key("s"))
	assert.Equal(t, []string{"https://github.com/octocat/Hello-World"}, f.launcher.shared)
	require.NotNil(t, m.Notice())
	assert.Equal(t, core.NotificationShared, m.Notice().Kind)

	m.Update(key("tab"))
	assert.Equal(t, focusInput, m.focus)
}

func TestSearchModel_FetchFailure(t *testing.T) {
	f := newFixture()
	f.client.err = &ghclient.TransportError{Username: "octocat", Err: errors.New("no route to host")}
	m := f.model(t, "")

	m.input.SetValue("octocat")
	_, cmd := m.Update(key("enter"))
	m.Update(fetchResult(t, cmd))

	require.NotNil(t, m.Notice())
	assert.Equal(t, "failed to fetch repositories", m.Notice().Message)
	assert.Empty(t, m.Repositories())
	assert.Equal(t, focusInput, m.focus)
}

func TestSearchModel_NoticeExpires(t *testing.T) {
	f := newFixture()
	m := f.model(t, "")

	m.Notify(core.Notification{Kind: core.NotificationFetchFailed, Message: core.MsgFetchFailed})
	first := m.noticeID

	m.Notify(core.Notification{Kind: core.NotificationUsernameRequired, Message: core.MsgUsernameRequired})

	// A stale timer does not clear the newer notice
	m.Update(clearNoticeMsg{id: first})
	require.NotNil(t, m.Notice())
	assert.Equal(t, core.NotificationUsernameRequired, m.Notice().Kind)

	m.Update(clearNoticeMsg{id: m.noticeID})
	assert.Nil(t, m.Notice())
}

func TestSearchModel_Quit(t *testing.T) {
	f := newFixture()
	m := f.model(t, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// q is typed into the input, not treated as quit
	m.Update(key("q"))
	assert.Equal(t, "q", m.InputValue())
}

func TestRepoItem(t *testing.T) {
	item := repoItem{repo: helloWorld}

	assert.Equal(t, "Hello-World", item.Title())
	assert.Equal(t, "octocat/Hello-World", item.FilterValue())
	assert.Equal(t, "octocat/Hello-World | Go | ★ 42", item.Description())

	fork := repoItem{repo: model.Repository{Name: "linux", FullName: "me/linux", Fork: true, Description: "mirror"}}
	assert.Equal(t, "linux (fork)", fork.Title())
	assert.True(t, strings.HasSuffix(fork.Description(), "| mirror"))
}
