package model

import (
	"encoding/json"
	"testing"
)

func TestRepository_DecodeGitHubPayload(t *testing.T) {
	payload := `{
		"id": 1296269,
		"name": "Hello-World",
		"full_name": "octocat/Hello-World",
		"html_url": "https://github.com/octocat/Hello-World",
		"description": "My first repository",
		"language": null,
		"stargazers_count": 80,
		"fork": false,
		"owner": {"login": "octocat"}
	}`

	var repo Repository
	if err := json.Unmarshal([]byte(payload), &repo); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if repo.ID != 1296269 {
		t.Errorf("ID = %d, want %d", repo.ID, 1296269)
	}

	if repo.FullName != "octocat/Hello-World" {
		t.Errorf("FullName = %q, want %q", repo.FullName, "octocat/Hello-World")
	}

	if repo.HTMLURL != "https://github.com/octocat/Hello-World" {
		t.Errorf("HTMLURL = %q, want %q", repo.HTMLURL, "https://github.com/octocat/Hello-World")
	}

	if repo.Language != "" {
		t.Errorf("Language = %q, want empty for null", repo.Language)
	}

	if repo.Stars != 80 {
		t.Errorf("Stars = %d, want %d", repo.Stars, 80)
	}
}

func TestRepository_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(Repository{ID: 1, Name: "a", FullName: "u/a", HTMLURL: "https://github.com/u/a"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"description", "language"} {
		if _, ok := raw[key]; ok {
			t.Errorf("key %q present in %s, want omitted", key, data)
		}
	}

	for _, key := range []string{"id", "name", "full_name", "html_url"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("key %q missing from %s", key, data)
		}
	}
}
