package changelog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/model"
)

// CommitFilter narrows a commit listing.
type CommitFilter struct {
	SHA   string    // ref to list from; default branch when empty
	Since time.Time // zero = unbounded
	Until time.Time // zero = unbounded

	// Boundary stops paging once this commit SHA is seen. The boundary commit
	// itself is not returned.
	Boundary string
}

// CommitRepository looks up commits through the GitHub client.
type CommitRepository struct {
	gh      GithubClient
	perPage int
	log     *zap.SugaredLogger
}

// NewCommitRepository creates a commit lookup that lists perPage commits per request.
func NewCommitRepository(client GithubClient, perPage int, log *zap.SugaredLogger) *CommitRepository {
	if perPage <= 0 || perPage > gh.MaxPerPage {
		perPage = gh.MaxPerPage
	}
	return &CommitRepository{
		gh:      client,
		perPage: perPage,
		log:     log,
	}
}

// Show fetches a single commit. It returns nil without an error when the commit
// does not exist or the record is malformed.
func (r *CommitRepository) Show(ctx context.Context, owner, repo, ref string) (*model.Commit, error) {
	raw, err := r.gh.GetCommit(ctx, owner, repo, ref)
	if err != nil {
		if errors.Is(err, gh.ErrNotFound) {
			return nil, nil
		}
		return nil, remoteError("failed to fetch commit "+ref, err)
	}

	commit, err := model.NewCommit(raw.SHA, raw.Message)
	if err != nil {
		r.log.Debugw("ignoring malformed commit record", "ref", ref, "error", err)
		return nil, nil
	}
	return commit, nil
}

// All fetches every commit matching filter, paging until the listing is
// exhausted or the boundary commit is reached. Commits are newest first.
func (r *CommitRepository) All(ctx context.Context, owner, repo string, filter CommitFilter) ([]model.Commit, error) {
	commits, reached, err := r.walk(ctx, owner, repo, filter)
	if err != nil {
		return nil, err
	}
	if filter.Boundary != "" && !reached {
		r.log.Warnw("boundary commit not found in history; using every listed commit",
			"boundary", filter.Boundary,
			"commits", len(commits),
		)
	}
	return commits, nil
}

func (r *CommitRepository) walk(ctx context.Context, owner, repo string, filter CommitFilter) ([]model.Commit, bool, error) {
	var commits []model.Commit

	for page := 1; ; page++ {
		batch, err := r.gh.ListCommits(ctx, owner, repo, gh.ListCommitsOptions{
			SHA:     filter.SHA,
			Since:   filter.Since,
			Until:   filter.Until,
			Page:    page,
			PerPage: r.perPage,
		})
		if err != nil {
			if page == 1 && isEmptyListing(err) {
				return nil, false, nil
			}
			return nil, false, remoteError("failed to list commits", err)
		}
		r.log.Debugw("fetched commit page", "page", page, "count", len(batch))

		for _, raw := range batch {
			if filter.Boundary != "" && raw.SHA == filter.Boundary {
				return commits, true, nil
			}
			commit, err := model.NewCommit(raw.SHA, raw.Message)
			if err != nil {
				r.log.Debugw("skipping malformed commit record", "sha", raw.SHA, "error", err)
				continue
			}
			commits = append(commits, *commit)
		}

		if len(batch) < r.perPage {
			return commits, false, nil
		}
	}
}

// isEmptyListing reports errors GitHub uses for "nothing to list": an unknown
// ref (404/422) or an empty repository (409).
func isEmptyListing(err error) bool {
	if errors.Is(err, gh.ErrNotFound) {
		return true
	}
	var apiErr *gh.APIError
	return errors.As(err, &apiErr) && apiErr.Status == 409
}
