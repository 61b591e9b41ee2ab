// Package ghclient lists a user's public repositories through the GitHub REST API.
package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v68/github"
	"github.com/inovacc/ghsearch/internal/application"
	"github.com/inovacc/ghsearch/internal/model"
)

// Client fetches repositories from GET {base}/users/{username}/repos.
type Client struct {
	gh *github.Client
}

// New creates an unauthenticated client for the API rooted at baseURL. A nil
// httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}

	gh := github.NewClient(httpClient)
	gh.BaseURL = base
	gh.UserAgent = application.UserAgent()

	return &Client{gh: gh}, nil
}

// FetchRepositoriesForUser returns username's repositories in server order.
// The caller guarantees username is not empty.
func (c *Client) FetchRepositoriesForUser(ctx context.Context, username string) ([]model.Repository, error) {
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, url.PathEscape(username), nil)
	if err != nil {
		return nil, classify(username, resp, err)
	}

	out := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, fromGitHub(r))
	}

	return out, nil
}

func classify(username string, resp *github.Response, err error) error {
	var (
		errResp   *github.ErrorResponse
		rateErr   *github.RateLimitError
		abuseErr  *github.AbuseRateLimitError
		status    int
		responded bool
	)

	switch {
	case errors.As(err, &errResp) && errResp.Response != nil:
		status, responded = errResp.Response.StatusCode, true
	case errors.As(err, &rateErr) && rateErr.Response != nil:
		status, responded = rateErr.Response.StatusCode, true
	case errors.As(err, &abuseErr) && abuseErr.Response != nil:
		status, responded = abuseErr.Response.StatusCode, true
	case resp != nil && resp.Response != nil:
		status, responded = resp.StatusCode, true
	}

	if !responded {
		return &TransportError{Username: username, Err: err}
	}

	if status >= 200 && status < 300 {
		return &DecodeError{Username: username, Err: err}
	}

	return &StatusError{Username: username, StatusCode: status, Err: err}
}

func fromGitHub(r *github.Repository) model.Repository {
	return model.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		HTMLURL:     r.GetHTMLURL(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Fork:        r.GetFork(),
	}
}
