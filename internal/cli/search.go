package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/ghsearch/internal/core"
	"github.com/inovacc/ghsearch/internal/model"
	"github.com/sirupsen/logrus"
)

// How long a notification stays on screen
const noticeTTL = 3 * time.Second

// Lines used by everything above and below the list
const chromeHeight = 9

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle    = blurredStyle
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// fetchResultMsg carries a completed fetch back to the event loop
type fetchResultMsg core.Result

// clearNoticeMsg expires the notification with the same id
type clearNoticeMsg struct{ id int }

// SearchOptions holds the collaborators of the search screen.
type SearchOptions struct {
	Store    core.PreferenceStore
	Client   core.RepositoryClient
	Launcher core.Launcher
	Logger   *logrus.Logger

	// Username, if set, is submitted as soon as the screen starts instead of
	// restoring the stored one
	Username string
}

// SearchModel is the Bubbletea model of the repository search screen.
type SearchModel struct {
	ctx     context.Context
	flow    *core.Flow
	input   textinput.Model
	list    list.Model
	spinner spinner.Model
	focus   focusArea

	username string
	repos    []model.Repository
	notice   *core.Notification
	noticeID int

	// startup is the fetch started by the constructor, run from Init
	startup tea.Cmd

	// pending collects commands produced by presenter and notifier callbacks
	pending []tea.Cmd
}

// NewSearchModel creates the search screen. It restores the stored username,
// or submits opts.Username, and starts the corresponding fetch.
func NewSearchModel(ctx context.Context, opts SearchOptions) (*SearchModel, error) {
	ti := textinput.New()
	ti.Placeholder = "GitHub username"
	ti.CharLimit = 39
	ti.Prompt = "› "
	ti.Cursor.Style = focusedStyle
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = focusedStyle

	m := &SearchModel{
		ctx:     ctx,
		input:   ti,
		list:    newRepoList(),
		spinner: s,
		focus:   focusInput,
	}

	flow, err := core.NewFlow(core.Options{
		Store:     opts.Store,
		Client:    opts.Client,
		Presenter: m,
		Notifier:  m,
		Launcher:  opts.Launcher,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	m.flow = flow

	if opts.Username != "" {
		m.input.SetValue(opts.Username)

		if fetch, err := flow.Submit(ctx, opts.Username); err == nil {
			m.startup = waitFor(fetch)
		}

		return m, nil
	}

	if username, fetch := flow.Restore(ctx); fetch != nil {
		m.input.SetValue(username)
		m.startup = waitFor(fetch)
	}

	return m, nil
}

// Init starts the cursor blink and any fetch begun by the constructor.
func (m *SearchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.startup != nil {
		cmds = append(cmds, m.spinner.Tick, m.startup)
	}

	return m.drain(cmds...)
}

// Update handles messages
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, max(msg.Height-v-chromeHeight, 3))
		m.input.Width = max(msg.Width-h-4, 10)

		return m, nil

	case fetchResultMsg:
		m.flow.Resolve(core.Result(msg))

		return m, m.drain()

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = nil
		}

		return m, nil

	case spinner.TickMsg:
		if m.flow.InFlight() == 0 {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.focus == focusInput {
			return m.updateInput(msg)
		}

		return m.updateList(msg)
	}

	var cmds []tea.Cmd

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	return m, m.drain(cmds...)
}

func (m *SearchModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "enter":
		fetch, err := m.flow.Submit(m.ctx, m.input.Value())
		if err != nil {
			return m, m.drain()
		}

		return m, m.drain(m.spinner.Tick, waitFor(fetch))

	case "tab", "down":
		if len(m.list.Items()) > 0 {
			m.focusList()
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *SearchModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd

		m.list, cmd = m.list.Update(msg)

		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.list.FilterState() != list.FilterApplied {
			return m, tea.Quit
		}

	case "tab", "i":
		return m, m.focusInput()

	case "enter", "o":
		if repo, ok := m.selected(); ok {
			_ = m.flow.OnItemSelected(repo.HTMLURL)
		}

		return m, m.drain()

	case "s":
		if repo, ok := m.selected(); ok {
			_ = m.flow.OnShareRequested(repo.HTMLURL)
		}

		return m, m.drain()
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// View renders the screen
func (m *SearchModel) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("GitHub Repository Search"))
	sb.WriteString("\n\n")
	sb.WriteString(blurredStyle.Render("Username:"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	switch {
	case m.notice != nil && m.notice.Kind.IsError():
		sb.WriteString(errorStyle.Render("✗ " + m.notice.Message))
	case m.notice != nil:
		sb.WriteString(successStyle.Render("✓ " + m.notice.Message))
	case m.flow.InFlight() > 0:
		sb.WriteString(fmt.Sprintf("%s Fetching repositories...", m.spinner.View()))
	}

	sb.WriteString("\n\n")

	if len(m.list.Items()) > 0 {
		sb.WriteString(m.list.View())
	} else {
		sb.WriteString(blurredStyle.Render("No repositories to show. Type a username and press enter."))
	}

	sb.WriteString("\n")

	if m.focus == focusInput {
		sb.WriteString(helpStyle.Render("enter: search • tab: go to list • esc/ctrl+c: quit"))
	} else {
		sb.WriteString(helpStyle.Render("enter/o: open in browser • s: share link • /: filter • tab: edit username • q: quit"))
	}

	return docStyle.Render(sb.String())
}

// ShowRepositories replaces the list contents. It implements core.Presenter.
func (m *SearchModel) ShowRepositories(username string, repos []model.Repository) {
	m.username = username
	m.repos = repos
	m.list.Title = fmt.Sprintf("Repositories of %s", username)
	m.list.ResetFilter()
	m.pending = append(m.pending, m.list.SetItems(repoItems(repos)))
	m.list.ResetSelected()

	if m.focus == focusInput && len(repos) > 0 && strings.TrimSpace(m.input.Value()) == username {
		m.focusList()
	}
}

// Notify shows n until it expires. It implements core.Notifier.
func (m *SearchModel) Notify(n core.Notification) {
	m.noticeID++
	m.notice = &n

	id := m.noticeID
	m.pending = append(m.pending, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	}))
}

// Username returns the username whose repositories are displayed.
func (m *SearchModel) Username() string {
	return m.username
}

// Repositories returns the displayed repositories in server order.
func (m *SearchModel) Repositories() []model.Repository {
	return m.repos
}

// Notice returns the notification currently on screen, if any.
func (m *SearchModel) Notice() *core.Notification {
	return m.notice
}

// InputValue returns the text in the username field.
func (m *SearchModel) InputValue() string {
	return m.input.Value()
}

func (m *SearchModel) selected() (model.Repository, bool) {
	i, ok := m.list.SelectedItem().(repoItem)
	if !ok {
		return model.Repository{}, false
	}

	return i.repo, true
}

func (m *SearchModel) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.input.PromptStyle = blurredStyle
	m.input.TextStyle = blurredStyle
}

func (m *SearchModel) focusInput() tea.Cmd {
	m.focus = focusInput
	m.input.PromptStyle = focusedStyle
	m.input.TextStyle = focusedStyle

	return m.input.Focus()
}

// drain batches cmds with the commands queued by presenter and notifier callbacks.
func (m *SearchModel) drain(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil

	return tea.Batch(cmds...)
}

func waitFor(fetch *core.Fetch) tea.Cmd {
	return func() tea.Msg {
		return fetchResultMsg(fetch.Wait())
	}
}
