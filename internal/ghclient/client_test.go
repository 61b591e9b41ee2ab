package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, srv.Client())
	require.NoError(t, err)

	return c, srv
}

func TestFetchRepositoriesForUser_Success(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotMethod string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `[
			{"id":3,"name":"zeta","full_name":"octocat/zeta","html_url":"https://github.com/octocat/zeta"},
			{"id":1,"name":"Hello-World","full_name":"octocat/Hello-World","html_url":"https://github.com/octocat/Hello-World","language":"Go","stargazers_count":7},
			{"id":2,"name":"alpha","full_name":"octocat/alpha","html_url":"https://github.com/octocat/alpha","fork":true}
		]`)
	})

	repos, err := c.FetchRepositoriesForUser(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Empty(t, gotQuery, "no query parameters are sent")
	assert.Empty(t, gotAuth, "no authentication header is sent")

	require.Len(t, repos, 3)

	// Server order, no client side sorting
	assert.Equal(t, []string{"zeta", "Hello-World", "alpha"}, []string{repos[0].Name, repos[1].Name, repos[2].Name})
	assert.Equal(t, int64(1), repos[1].ID)
	assert.Equal(t, "octocat/Hello-World", repos[1].FullName)
	assert.Equal(t, "https://github.com/octocat/Hello-World", repos[1].HTMLURL)
	assert.Equal(t, "Go", repos[1].Language)
	assert.Equal(t, 7, repos[1].Stars)
	assert.True(t, repos[2].Fork)
}

func TestFetchRepositoriesForUser_EmptyList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	})

	repos, err := c.FetchRepositoriesForUser(context.Background(), "nobody-with-repos")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestFetchRepositoriesForUser_StatusError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = fmt.Fprint(w, `{"message":"Not Found"}`)
			})

			repos, err := c.FetchRepositoriesForUser(context.Background(), "ghost")
			require.Error(t, err)
			assert.Nil(t, repos)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr), "got %T: %v", err, err)
			assert.Equal(t, status, statusErr.StatusCode)
			assert.Equal(t, "ghost", statusErr.Username)
		})
	}
}

func TestFetchRepositoriesForUser_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(srv.URL, srv.Client())
	require.NoError(t, err)

	// Nothing listens on the address anymore
	srv.Close()

	_, err = c.FetchRepositoriesForUser(context.Background(), "octocat")
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr), "got %T: %v", err, err)
}

func TestFetchRepositoriesForUser_DecodeError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"not":"an array"}`)
	})

	_, err := c.FetchRepositoriesForUser(context.Background(), "octocat")
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr), "got %T: %v", err, err)
}

func TestFetchRepositoriesForUser_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchRepositoriesForUser(ctx, "octocat")
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_AddsTrailingSlash(t *testing.T) {
	c, err := New("https://ghe.example.com/api/v3", nil)
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3/", c.gh.BaseURL.String())
	assert.Equal(t, "ghsearch/0.1.0", c.gh.UserAgent)
}

func TestErrorMessages(t *testing.T) {
	inner := errors.New("connection refused")

	assert.Equal(t, "fetching repositories for octocat: connection refused",
		(&TransportError{Username: "octocat", Err: inner}).Error())
	assert.Equal(t, "fetching repositories for octocat: unexpected status 404",
		(&StatusError{Username: "octocat", StatusCode: 404}).Error())
	assert.ErrorIs(t, &DecodeError{Username: "octocat", Err: inner}, inner)
}
