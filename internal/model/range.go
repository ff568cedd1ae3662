package model

// Range is the ordered set of pull requests merged between two references.
// A Range is never modified after construction.
type Range struct {
	start        string
	end          string
	pullRequests []PullRequest
}

// NewRange builds a Range from pull requests in discovery order. When two
// entries share a number only the first one is kept. An empty end means the
// range extends to the repository's default branch.
func NewRange(start, end string, pullRequests []PullRequest) *Range {
	seen := make(map[int]bool, len(pullRequests))
	unique := make([]PullRequest, 0, len(pullRequests))
	for _, pr := range pullRequests {
		if seen[pr.Number] {
			continue
		}
		seen[pr.Number] = true
		unique = append(unique, pr)
	}

	return &Range{
		start:        start,
		end:          end,
		pullRequests: unique,
	}
}

// PullRequests returns a copy of the pull requests in discovery order.
func (r *Range) PullRequests() []PullRequest {
	out := make([]PullRequest, len(r.pullRequests))
	copy(out, r.pullRequests)
	return out
}

// Reversed returns a copy of the pull requests in reverse discovery order.
func (r *Range) Reversed() []PullRequest {
	out := make([]PullRequest, len(r.pullRequests))
	for i, pr := range r.pullRequests {
		out[len(out)-1-i] = pr
	}
	return out
}

func (r *Range) Count() int {
	return len(r.pullRequests)
}

func (r *Range) IsEmpty() bool {
	return len(r.pullRequests) == 0
}

func (r *Range) StartReference() string {
	return r.start
}

// EndReference returns the end reference, or "" when none was given.
func (r *Range) EndReference() string {
	return r.end
}

func (r *Range) HasEndReference() bool {
	return r.end != ""
}

// Select returns a new Range holding only the pull requests whose numbers are
// in keep, preserving order.
func (r *Range) Select(keep map[int]bool) *Range {
	var selected []PullRequest
	for _, pr := range r.pullRequests {
		if keep[pr.Number] {
			selected = append(selected, pr)
		}
	}
	return NewRange(r.start, r.end, selected)
}
