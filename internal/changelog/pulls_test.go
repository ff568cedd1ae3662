package changelog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bjulian5/changelog/internal/gh"
)

func TestPullRequestRepository_Fetch(t *testing.T) {
	client := &gh.MockGithubClient{}
	client.On("GetPullRequest", mock.Anything, "o", "r", 42).Return(&gh.PullRequest{
		Number:      42,
		Title:       "Add range resolver",
		URL:         "https://github.com/o/r/pull/42",
		AuthorLogin: "octocat",
		AuthorURL:   "https://github.com/octocat",
	}, nil)

	repo := NewPullRequestRepository(client, zap.NewNop().Sugar())
	pr, err := repo.Fetch(context.Background(), "o", "r", 42)
	require.NoError(t, err)

	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "Add range resolver", pr.Title)
	assert.Equal(t, "https://github.com/o/r/pull/42", pr.URL)
	require.True(t, pr.HasAuthor())
	assert.Equal(t, "octocat", pr.Author.Login)
}

func TestPullRequestRepository_Fetch_InvalidAuthorIsDropped(t *testing.T) {
	client := &gh.MockGithubClient{}
	client.On("GetPullRequest", mock.Anything, "o", "r", 42).Return(&gh.PullRequest{
		Number:      42,
		Title:       "Add range resolver",
		AuthorLogin: "octocat",
		AuthorURL:   "not a url",
	}, nil)

	repo := NewPullRequestRepository(client, zap.NewNop().Sugar())
	pr, err := repo.Fetch(context.Background(), "o", "r", 42)
	require.NoError(t, err)
	assert.False(t, pr.HasAuthor())
}

func TestPullRequestRepository_Fetch_Errors(t *testing.T) {
	testCases := []struct {
		desc            string
		response        *gh.PullRequest
		err             error
		expectNotFound  bool
		expectTransport bool
	}{
		{
			desc:           "missing pull request",
			err:            &gh.APIError{Status: 404, Message: "Not Found"},
			expectNotFound: true,
		},
		{
			desc:            "rate limited",
			err:             &gh.APIError{Status: 403, Message: "API rate limit exceeded"},
			expectTransport: true,
		},
		{
			desc:            "malformed response",
			response:        &gh.PullRequest{Number: 42, Title: ""},
			expectTransport: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			client := &gh.MockGithubClient{}
			if tc.err != nil {
				client.On("GetPullRequest", mock.Anything, "o", "r", 42).Return(nil, tc.err)
			} else {
				client.On("GetPullRequest", mock.Anything, "o", "r", 42).Return(tc.response, nil)
			}

			repo := NewPullRequestRepository(client, zap.NewNop().Sugar())
			pr, err := repo.Fetch(context.Background(), "o", "r", 42)
			require.Error(t, err)
			assert.Nil(t, pr)

			if tc.expectNotFound {
				var notFound *PullRequestNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, 42, notFound.Number)
				assert.Equal(t, `could not find pull request "42" in "o/r"`, err.Error())
			}
			if tc.expectTransport {
				var transportErr *TransportError
				assert.ErrorAs(t, err, &transportErr)
				assert.NotErrorIs(t, err, ErrPullRequestNotFound)
			}
		})
	}
}
