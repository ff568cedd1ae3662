package ui

import (
	"errors"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/bjulian5/changelog/internal/model"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder starts
	// This prevents ANSI escape sequences from leaking into the finder input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectPullRequests presents a fuzzy finder to pick pull requests (Tab marks, Enter confirms).
// Returns the picked pull requests in their original order, or nil if the user cancelled.
func SelectPullRequests(prs []model.PullRequest) ([]model.PullRequest, error) {
	// Flush stdout/stderr before starting fuzzy finder to clear any ANSI sequences
	os.Stdout.Sync()
	os.Stderr.Sync()

	idxs, err := fuzzyfinder.FindMulti(
		prs,
		func(i int) string {
			return FormatPullRequestFinderLine(prs[i])
		},
		fuzzyfinder.WithHeader("Tab to select, Enter to confirm"),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return FormatPullRequestPreview(prs[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, err
	}

	return pick(prs, idxs), nil
}

// pick returns prs at idxs, in the order of prs
func pick(prs []model.PullRequest, idxs []int) []model.PullRequest {
	sort.Ints(idxs)
	selected := make([]model.PullRequest, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, prs[i])
	}
	return selected
}
