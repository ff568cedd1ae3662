package model

// Commit is a commit as reported by the hosting service.
type Commit struct {
	SHA     string `validate:"required"`
	Message string `validate:"required"`
}

// NewCommit builds a Commit. It fails when the identifier or message is missing,
// which callers treat as "no commit" rather than a hard error.
func NewCommit(sha, message string) (*Commit, error) {
	c := &Commit{SHA: sha, Message: message}
	if err := check("commit", c); err != nil {
		return nil, err
	}
	return c, nil
}
