package gh

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotFound is matched by API errors that mean the requested resource does not exist
var ErrNotFound = errors.New("not found")

// APIError is a failed gh api call
type APIError struct {
	Status  int    // HTTP status, 0 when gh did not report one
	Message string // message printed by gh
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("gh CLI error: %s", e.Message)
	}
	return fmt.Sprintf("GitHub API error (HTTP %d): %s", e.Status, e.Message)
}

// Is reports 404 and 422 responses as ErrNotFound. GitHub answers 422 for
// commit lookups of refs that do not exist.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && (e.Status == 404 || e.Status == 422)
}

// IsRateLimited reports whether GitHub rejected the call because of rate limiting
func (e *APIError) IsRateLimited() bool {
	if e.Status == 429 {
		return true
	}
	return e.Status == 403 && strings.Contains(strings.ToLower(e.Message), "rate limit")
}

// CommandError is returned by an ExecFunc when gh exits non-zero
type CommandError struct {
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("gh exited: %v: %s", e.Err, strings.TrimSpace(e.Stderr))
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

var httpStatusRegex = regexp.MustCompile(`\(HTTP (\d{3})\)`)

// parseAPIError turns gh stderr such as "gh: Not Found (HTTP 404)" into an APIError
func parseAPIError(stderr string) *APIError {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")

	// Prefer the line carrying the HTTP status, otherwise the last line
	msg := strings.TrimSpace(lines[len(lines)-1])
	for _, line := range lines {
		if httpStatusRegex.MatchString(line) {
			msg = strings.TrimSpace(line)
			break
		}
	}
	msg = strings.TrimPrefix(msg, "gh: ")

	apiErr := &APIError{Message: msg}
	if m := httpStatusRegex.FindStringSubmatch(msg); len(m) == 2 {
		apiErr.Status, _ = strconv.Atoi(m[1])
		apiErr.Message = strings.TrimSpace(httpStatusRegex.ReplaceAllString(msg, ""))
	}
	return apiErr
}
