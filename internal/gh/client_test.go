package gh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec records the last invocation and returns a canned response
type fakeExec struct {
	env    []string
	args   []string
	output string
	err    error
}

func (f *fakeExec) run(ctx context.Context, env []string, args ...string) ([]byte, error) {
	f.env = env
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.output), nil
}

func (f *fakeExec) path() string {
	return f.args[len(f.args)-1]
}

func TestClient_GetCommit(t *testing.T) {
	fake := &fakeExec{output: `{"sha":"abc123","commit":{"message":"Merge pull request #42 from feature/x"}}`}
	client := NewClient(WithExec(fake.run))

	commit, err := client.GetCommit(context.Background(), "localheinz", "github-changelog", "feature/x")
	require.NoError(t, err)

	assert.Equal(t, "abc123", commit.SHA)
	assert.Equal(t, "Merge pull request #42 from feature/x", commit.Message)
	assert.Equal(t, "repos/localheinz/github-changelog/commits/feature/x", fake.path())
	assert.Equal(t, []string{"api", "--method", "GET"}, fake.args[:3])
	assert.Nil(t, fake.env)
}

func TestClient_ListCommits(t *testing.T) {
	fake := &fakeExec{output: `[
		{"sha":"a1","commit":{"message":"Merge pull request #42 from feature/x"}},
		{"sha":"a2","commit":{"message":"fix typo"}}
	]`}
	client := NewClient(WithExec(fake.run), WithToken("secret"))

	since := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	commits, err := client.ListCommits(context.Background(), "o", "r", ListCommitsOptions{
		SHA:     "main",
		Since:   since,
		Page:    2,
		PerPage: 500,
	})
	require.NoError(t, err)

	require.Len(t, commits, 2)
	assert.Equal(t, "a1", commits[0].SHA)
	assert.Equal(t, "fix typo", commits[1].Message)
	assert.Equal(t, "repos/o/r/commits?page=2&per_page=100&sha=main&since=2024-01-02T03%3A04%3A05Z", fake.path())
	assert.Equal(t, []string{"GH_TOKEN=secret"}, fake.env)
}

func TestClient_GetPullRequest(t *testing.T) {
	fake := &fakeExec{output: `{
		"number": 7,
		"title": "Add range resolver",
		"html_url": "https://github.com/o/r/pull/7",
		"state": "closed",
		"merged_at": "2024-02-01T10:00:00Z",
		"user": {"login": "octocat", "html_url": "https://github.com/octocat"}
	}`}
	client := NewClient(WithExec(fake.run))

	pr, err := client.GetPullRequest(context.Background(), "o", "r", 7)
	require.NoError(t, err)

	assert.Equal(t, "repos/o/r/pulls/7", fake.path())
	assert.Equal(t, 7, pr.Number)
	assert.Equal(t, "Add range resolver", pr.Title)
	assert.Equal(t, "octocat", pr.AuthorLogin)
	assert.Equal(t, "https://github.com/octocat", pr.AuthorURL)
	assert.Equal(t, "https://github.com/o/r/pull/7", pr.URL)
}

func TestClient_GetPullRequest_NoUser(t *testing.T) {
	fake := &fakeExec{output: `{"number": 7, "title": "Ghost PR", "user": null}`}
	client := NewClient(WithExec(fake.run))

	pr, err := client.GetPullRequest(context.Background(), "o", "r", 7)
	require.NoError(t, err)
	assert.Empty(t, pr.AuthorLogin)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		stderr        string
		expectStatus  int
		expectMissing bool
		expectLimited bool
	}{
		{
			name:          "404 is not found",
			stderr:        "gh: Not Found (HTTP 404)\n",
			expectStatus:  404,
			expectMissing: true,
		},
		{
			name:          "422 unknown commit is not found",
			stderr:        "gh: No commit found for SHA: nope (HTTP 422)\n",
			expectStatus:  422,
			expectMissing: true,
		},
		{
			name:          "rate limit is a transport failure",
			stderr:        "{\"message\":\"API rate limit exceeded\"}\ngh: API rate limit exceeded for user ID 1. (HTTP 403)\n",
			expectStatus:  403,
			expectLimited: true,
		},
		{
			name:         "auth failure",
			stderr:       "gh: Bad credentials (HTTP 401)",
			expectStatus: 401,
		},
		{
			name:         "no status reported",
			stderr:       "error connecting to api.github.com",
			expectStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExec{err: &CommandError{Stderr: tt.stderr, Err: errors.New("exit status 1")}}
			client := NewClient(WithExec(fake.run))

			_, err := client.GetPullRequest(context.Background(), "o", "r", 1)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectStatus, apiErr.Status)
			assert.Equal(t, tt.expectMissing, errors.Is(err, ErrNotFound))
			assert.Equal(t, tt.expectLimited, apiErr.IsRateLimited())
		})
	}
}

func TestClient_ContextErrorWins(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	fake := &fakeExec{err: &CommandError{Stderr: "signal: killed", Err: errors.New("signal: killed")}}
	client := NewClient(WithExec(fake.run))

	_, err := client.GetCommit(ctx, "o", "r", "main")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseAPIError_Message(t *testing.T) {
	apiErr := parseAPIError("gh: Not Found (HTTP 404)")
	assert.Equal(t, "Not Found", apiErr.Message)
	assert.Equal(t, "GitHub API error (HTTP 404): Not Found", apiErr.Error())
}
