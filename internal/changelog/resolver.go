package changelog

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/model"
)

// DefaultConcurrency is the number of pull requests fetched in parallel
const DefaultConcurrency = 4

// GithubClient defines the GitHub operations needed by the Resolver
type GithubClient interface {
	GetCommit(ctx context.Context, owner, repo, ref string) (*gh.Commit, error)
	ListCommits(ctx context.Context, owner, repo string, opts gh.ListCommitsOptions) ([]gh.Commit, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
}

// Resolver finds the pull requests merged between two references
type Resolver struct {
	commits     *CommitRepository
	pulls       *PullRequestRepository
	log         *zap.SugaredLogger
	concurrency int
	perPage     int
}

// Option configures a Resolver
type Option func(*Resolver)

// WithConcurrency bounds the number of pull requests fetched at once. 1 fetches sequentially.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithPerPage sets the commit page size
func WithPerPage(n int) Option {
	return func(r *Resolver) {
		r.perPage = n
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a new Resolver backed by client
func NewResolver(client GithubClient, opts ...Option) *Resolver {
	r := &Resolver{
		log:         zap.NewNop().Sugar(),
		concurrency: DefaultConcurrency,
		perPage:     gh.MaxPerPage,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.commits = NewCommitRepository(client, r.perPage, r.log)
	r.pulls = NewPullRequestRepository(client, r.log)
	return r
}

// Resolve returns the pull requests merged in startRef..endRef, in the order
// their merge commits were listed (newest first). An empty endRef means the
// repository's default branch.
//
// Pull requests that cannot be found are left out. Any other remote failure
// aborts the resolution.
func (r *Resolver) Resolve(ctx context.Context, owner, repo, startRef, endRef string) (*model.Range, error) {
	if _, err := model.NewRepository(owner, repo); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if startRef == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "start reference is required")
	}

	log := r.log.With("repository", owner+"/"+repo, "start", startRef, "end", endRef)

	start, err := r.commits.Show(ctx, owner, repo, startRef)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, &ReferenceNotFoundError{Owner: owner, Repo: repo, Reference: startRef}
	}

	if endRef != "" {
		end, err := r.commits.Show(ctx, owner, repo, endRef)
		if err != nil {
			return nil, err
		}
		if end == nil {
			return nil, &ReferenceNotFoundError{Owner: owner, Repo: repo, Reference: endRef}
		}
		if end.SHA == start.SHA {
			log.Debugw("start and end resolve to the same commit", "sha", start.SHA)
			return model.NewRange(startRef, endRef, nil), nil
		}
	}

	commits, err := r.commits.All(ctx, owner, repo, CommitFilter{
		SHA:      endRef,
		Boundary: start.SHA,
	})
	if err != nil {
		return nil, err
	}

	numbers := PullRequestNumbers(commits)
	log.Debugw("classified commits", "commits", len(commits), "pull_requests", len(numbers))

	pullRequests, err := r.fetchPullRequests(ctx, log, owner, repo, numbers)
	if err != nil {
		return nil, err
	}

	return model.NewRange(startRef, endRef, pullRequests), nil
}

// fetchPullRequests fetches numbers with at most r.concurrency calls in flight.
// The result keeps the order of numbers; not-found entries are dropped.
func (r *Resolver) fetchPullRequests(ctx context.Context, log *zap.SugaredLogger, owner, repo string, numbers []int) ([]model.PullRequest, error) {
	slots := make([]*model.PullRequest, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, number := range numbers {
		i, number := i, number
		g.Go(func() error {
			pr, err := r.pulls.Fetch(gctx, owner, repo, number)
			if err != nil {
				if errors.Is(err, ErrPullRequestNotFound) {
					log.Warnw("skipping pull request", "number", number, "error", err)
					return nil
				}
				return err
			}
			slots[i] = pr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pullRequests := make([]model.PullRequest, 0, len(slots))
	for _, pr := range slots {
		if pr != nil {
			pullRequests = append(pullRequests, *pr)
		}
	}
	return pullRequests, nil
}
