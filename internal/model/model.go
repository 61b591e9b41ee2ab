package model

const (
	// PreferenceStoreName is the named preference store holding ghsearch settings
	PreferenceStoreName = "USER_PREF"

	// KeyUserName holds the last submitted username
	KeyUserName = "USER_NAME"
)

// Repository is a public GitHub repository as listed for a user.
type Repository struct {
	// ID is the GitHub repository id
	ID int64 `json:"id"`

	// Name is the repository name without the owner
	Name string `json:"name"`

	// FullName is owner/name
	FullName string `json:"full_name"`

	// HTMLURL is the repository page, opened and shared by the list actions
	HTMLURL string `json:"html_url"`

	// Description is the optional repository description
	Description string `json:"description,omitempty"`

	// Language is the primary language reported by GitHub
	Language string `json:"language,omitempty"`

	// Stars is the stargazer count
	Stars int `json:"stargazers_count"`

	// Fork indicates the repository is a fork
	Fork bool `json:"fork"`
}
