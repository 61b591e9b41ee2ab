// Package core provides the repository retrieval flow for ghsearch.
//
// This package contains the orchestration separated from UI concerns. The
// [Flow] reads the username, validates it, remembers it in the preference
// store, asks the repository client for the user's repositories and hands the
// outcome to a [Presenter] or a [Notifier].
//
// # Design Principles
//
//   - Collaborators are injected through [Options]; nothing is global
//   - Functions return errors instead of printing to stdout/stderr
//   - UI-specific logic belongs in the cli package, not here
//
// # Asynchronous Fetches
//
// A fetch is split into two phases:
//
//  1. [Flow.Submit] or [Flow.Restore] - Validates, persists and dispatches
//     the request on a goroutine, returning a [Fetch] handle
//  2. [Flow.Resolve] - Applies the [Result] on the caller's UI thread
//
// This split allows the Bubbletea UI to wait for the result inside a tea.Cmd
// while keeping every state change on the Update loop. Requests are never
// de-duplicated or cancelled: when several are outstanding, the one resolved
// last is what the presenter shows.
package core
