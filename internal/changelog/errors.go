package changelog

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when owner, repository or reference fail validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPullRequestNotFound is matched by *PullRequestNotFoundError.
	ErrPullRequestNotFound = errors.New("pull request not found")

	// ErrReferenceNotFound is matched by *ReferenceNotFoundError.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrTimeout is matched by *TimeoutError.
	ErrTimeout = errors.New("timed out waiting for GitHub")
)

// PullRequestNotFoundError reports a merge commit whose pull request does not exist
// or is not visible with the current credentials.
type PullRequestNotFoundError struct {
	Owner  string
	Repo   string
	Number int
}

func (e *PullRequestNotFoundError) Error() string {
	return fmt.Sprintf(`could not find pull request "%d" in "%s/%s"`, e.Number, e.Owner, e.Repo)
}

func (e *PullRequestNotFoundError) Is(target error) bool {
	return target == ErrPullRequestNotFound
}

// ReferenceNotFoundError reports a start or end reference that names no commit.
type ReferenceNotFoundError struct {
	Owner     string
	Repo      string
	Reference string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf(`could not find reference "%s" in "%s/%s"`, e.Reference, e.Owner, e.Repo)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// TransportError is a remote call that failed for a reason other than absence:
// network, authentication, rate limiting or an unreadable response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError is a remote call aborted because the request deadline passed.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrTimeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// remoteError classifies a failed remote call that is not a not-found.
func remoteError(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &TimeoutError{Op: op, Err: err}
	case errors.Is(err, context.Canceled):
		return errors.Wrap(err, op)
	default:
		return &TransportError{Op: op, Err: err}
	}
}
