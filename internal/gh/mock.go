package gh

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGithubClient struct {
	mock.Mock
}

// GetCommit implements changelog.GithubClient.
func (m *MockGithubClient) GetCommit(ctx context.Context, owner string, repo string, ref string) (*Commit, error) {
	args := m.Called(ctx, owner, repo, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Commit), args.Error(1)
}

// ListCommits implements changelog.GithubClient.
func (m *MockGithubClient) ListCommits(ctx context.Context, owner string, repo string, opts ListCommitsOptions) ([]Commit, error) {
	args := m.Called(ctx, owner, repo, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Commit), args.Error(1)
}

// GetPullRequest implements changelog.GithubClient.
func (m *MockGithubClient) GetPullRequest(ctx context.Context, owner string, repo string, number int) (*PullRequest, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PullRequest), args.Error(1)
}
