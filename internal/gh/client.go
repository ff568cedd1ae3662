package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ExecFunc runs gh with the given extra environment and arguments and returns stdout.
// A non-zero exit must be reported as a *CommandError.
type ExecFunc func(ctx context.Context, env []string, args ...string) ([]byte, error)

// Client provides read-only GitHub REST operations via gh CLI
type Client struct {
	token string
	exec  ExecFunc
}

// Option configures a Client
type Option func(*Client)

// WithToken authenticates gh calls with the given token instead of the stored gh login
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithExec replaces the function used to run gh
func WithExec(fn ExecFunc) Option {
	return func(c *Client) {
		c.exec = fn
	}
}

// NewClient creates a new GitHub client
func NewClient(opts ...Option) *Client {
	c := &Client{exec: runGH}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCommit fetches a single commit by SHA, branch or tag
func (c *Client) GetCommit(ctx context.Context, owner, repo, ref string) (*Commit, error) {
	path := fmt.Sprintf("repos/%s/%s/commits/%s", url.PathEscape(owner), url.PathEscape(repo), escapeRef(ref))

	output, err := c.api(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw commitJSON
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse commit JSON: %w", err)
	}

	commit := raw.toCommit()
	return &commit, nil
}

// ListCommits fetches one page of commits, newest first
func (c *Client) ListCommits(ctx context.Context, owner, repo string, opts ListCommitsOptions) ([]Commit, error) {
	query := url.Values{}
	if opts.SHA != "" {
		query.Set("sha", opts.SHA)
	}
	if !opts.Since.IsZero() {
		query.Set("since", opts.Since.UTC().Format(time.RFC3339))
	}
	if !opts.Until.IsZero() {
		query.Set("until", opts.Until.UTC().Format(time.RFC3339))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(min(opts.PerPage, MaxPerPage)))
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}

	path := fmt.Sprintf("repos/%s/%s/commits", url.PathEscape(owner), url.PathEscape(repo))
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	output, err := c.api(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw []commitJSON
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse commit list: %w", err)
	}

	commits := make([]Commit, 0, len(raw))
	for i := range raw {
		commits = append(commits, raw[i].toCommit())
	}
	return commits, nil
}

// GetPullRequest fetches PR details by number
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	path := fmt.Sprintf("repos/%s/%s/pulls/%d", url.PathEscape(owner), url.PathEscape(repo), number)

	output, err := c.api(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw pullJSON
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse PR JSON: %w", err)
	}
	return raw.toPullRequest(), nil
}

// api runs `gh api <path>` and classifies failures
func (c *Client) api(ctx context.Context, path string) ([]byte, error) {
	args := []string{
		"api",
		"--method", "GET",
		"-H", "Accept: application/vnd.github+json",
		path,
	}

	output, err := c.exec(ctx, c.env(), args...)
	if err != nil {
		// A killed process only tells us it was killed; report why
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return nil, parseAPIError(cmdErr.Stderr)
		}
		return nil, err
	}
	return output, nil
}

func (c *Client) env() []string {
	if c.token == "" {
		return nil
	}
	return []string{"GH_TOKEN=" + c.token}
}

// runGH executes a gh CLI command and returns the output
func runGH(ctx context.Context, env []string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, &CommandError{Stderr: string(exitErr.Stderr), Err: err}
		}
		return nil, fmt.Errorf("failed to execute gh: %w", err)
	}
	return output, nil
}

// escapeRef escapes each path segment of a ref so branch names like feature/x survive
func escapeRef(ref string) string {
	segments := strings.Split(ref, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
