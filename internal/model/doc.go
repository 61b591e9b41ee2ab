// Package model defines the data structures shared by ghsearch packages.
//
// # Repository
//
// The [Repository] struct is one public repository returned for a username
// query:
//
//	type Repository struct {
//	    ID          int64  // GitHub repository id
//	    Name        string // Short name, e.g. "Hello-World"
//	    FullName    string // owner/name, e.g. "octocat/Hello-World"
//	    HTMLURL     string // Browser URL, used for open and share
//	    Description string // Optional, display only
//	    Language    string // Optional, display only
//	    Stars       int    // Stargazer count, display only
//	    Fork        bool   // Whether the repository is a fork
//	}
//
// Repositories are immutable once built. A new query replaces the previous
// slice wholesale.
//
// # Preferences
//
// [PreferenceStoreName] and [KeyUserName] identify the single stored
// preference that remembers the last submitted username.
package model
