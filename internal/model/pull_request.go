package model

// Author is the user who opened a pull request.
type Author struct {
	Login string `json:"login" yaml:"login" validate:"required"`
	URL   string `json:"url" yaml:"url" validate:"required,url"`
}

// NewAuthor builds an Author, rejecting an empty login or a malformed profile URL.
func NewAuthor(login, url string) (*Author, error) {
	a := &Author{Login: login, URL: url}
	if err := check("author", a); err != nil {
		return nil, err
	}
	return a, nil
}

// PullRequest is a merged pull request that appears in a changelog.
type PullRequest struct {
	Number int     `json:"number" yaml:"number" validate:"gt=0"`
	Title  string  `json:"title" yaml:"title" validate:"required"`
	URL    string  `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Author *Author `json:"author,omitempty" yaml:"author,omitempty"`
}

// NewPullRequest builds a PullRequest. The number must be positive and the
// title non-empty. url may be empty but must be well formed when set. author may be nil.
func NewPullRequest(number int, title, url string, author *Author) (*PullRequest, error) {
	pr := &PullRequest{Number: number, Title: title, URL: url, Author: author}
	if err := check("pull request", pr); err != nil {
		return nil, err
	}
	return pr, nil
}

// HasAuthor reports whether author information is attached.
func (p PullRequest) HasAuthor() bool {
	return p.Author != nil
}
