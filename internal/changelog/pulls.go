package changelog

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/model"
)

// PullRequestRepository looks up pull requests through the GitHub client.
type PullRequestRepository struct {
	gh  GithubClient
	log *zap.SugaredLogger
}

func NewPullRequestRepository(client GithubClient, log *zap.SugaredLogger) *PullRequestRepository {
	return &PullRequestRepository{gh: client, log: log}
}

// Fetch returns the pull request with the given number, or a
// *PullRequestNotFoundError when GitHub has no such pull request.
func (r *PullRequestRepository) Fetch(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error) {
	op := fmt.Sprintf("failed to fetch pull request #%d", number)

	raw, err := r.gh.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		if errors.Is(err, gh.ErrNotFound) {
			return nil, &PullRequestNotFoundError{Owner: owner, Repo: repo, Number: number}
		}
		return nil, remoteError(op, err)
	}

	var author *model.Author
	if raw.AuthorLogin != "" {
		author, err = model.NewAuthor(raw.AuthorLogin, raw.AuthorURL)
		if err != nil {
			r.log.Debugw("dropping invalid author", "number", number, "error", err)
		}
	}

	pr, err := model.NewPullRequest(raw.Number, raw.Title, raw.URL, author)
	if err != nil {
		return nil, &TransportError{Op: op, Err: errors.Wrap(err, "unexpected response")}
	}
	return pr, nil
}
