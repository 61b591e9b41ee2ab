package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/ghsearch/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

type repoItem struct {
	repo model.Repository
}

func (i repoItem) Title() string {
	if i.repo.Fork {
		return fmt.Sprintf("%s (fork)", i.repo.Name)
	}

	return i.repo.Name
}

func (i repoItem) Description() string {
	parts := []string{i.repo.FullName}

	if i.repo.Language != "" {
		parts = append(parts, i.repo.Language)
	}

	parts = append(parts, fmt.Sprintf("★ %d", i.repo.Stars))

	if i.repo.Description != "" {
		parts = append(parts, i.repo.Description)
	}

	return strings.Join(parts, " | ")
}

func (i repoItem) FilterValue() string {
	return i.repo.FullName
}

func repoItems(repos []model.Repository) []list.Item {
	items := make([]list.Item, len(repos))
	for i, repo := range repos {
		items[i] = repoItem{repo: repo}
	}

	return items
}

func newRepoList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Repositories"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return l
}
