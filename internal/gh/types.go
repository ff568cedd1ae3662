package gh

import "time"

// Commit is a commit record returned by the GitHub API
type Commit struct {
	SHA     string // full commit hash
	Message string // full commit message
}

// PullRequest contains GitHub PR information returned from the API
type PullRequest struct {
	Number      int    // PR number
	Title       string // PR title
	URL         string // PR web URL
	AuthorLogin string // empty when the user was deleted
	AuthorURL   string // author profile URL
}

// ListCommitsOptions filters a single page of the commit listing
type ListCommitsOptions struct {
	SHA     string    // branch, tag or commit to start listing from; default branch if empty
	Since   time.Time // only commits after this date (zero = unbounded)
	Until   time.Time // only commits before this date (zero = unbounded)
	Page    int       // 1-based page number
	PerPage int       // page size, at most 100
}

// MaxPerPage is the largest page size the GitHub API accepts
const MaxPerPage = 100

// commitJSON mirrors the fields we read from the commits endpoints
type commitJSON struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
	} `json:"commit"`
}

func (c *commitJSON) toCommit() Commit {
	return Commit{
		SHA:     c.SHA,
		Message: c.Commit.Message,
	}
}

// pullJSON mirrors the fields we read from the pulls endpoint
type pullJSON struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	User    *struct {
		Login   string `json:"login"`
		HTMLURL string `json:"html_url"`
	} `json:"user"`
}

func (p *pullJSON) toPullRequest() *PullRequest {
	pr := &PullRequest{
		Number: p.Number,
		Title:  p.Title,
		URL:    p.HTMLURL,
	}
	if p.User != nil {
		pr.AuthorLogin = p.User.Login
		pr.AuthorURL = p.User.HTMLURL
	}
	return pr
}
