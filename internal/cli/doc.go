// Package cli provides the terminal user interface for ghsearch.
//
// The package uses [Bubbletea] for the interactive screen and [Lipgloss] for
// styling. The screen follows the standard Bubbletea Model-View-Update (MVU)
// architecture and acts as the presenter and notifier of a [core.Flow].
//
// # Search Screen
//
// [SearchModel] combines:
//   - a text input for the GitHub username
//   - a filterable list of the user's repositories
//   - a spinner while requests are outstanding
//   - a notification line that clears itself after a few seconds
//
// Fetches run inside tea.Cmd functions; their results come back to Update as
// messages, so every change to the flow and the screen happens on the
// Bubbletea event loop.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
