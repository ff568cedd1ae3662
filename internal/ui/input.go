package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjulian5/changelog/internal/model"
)

// PromptSelection prompts user to select items from a list.
// Supports: 'all', 'none', or comma-separated indices (1-indexed).
// The prompt is written to out. Returns selected indices (0-indexed) or nil if cancelled.
func PromptSelection(in io.Reader, out io.Writer, prompt string, itemCount int) []int {
	reader := bufio.NewReader(in)
	io.WriteString(out, prompt)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	if input == "" || strings.ToLower(input) == "none" {
		return nil
	}

	if strings.ToLower(input) == "all" {
		indices := make([]int, itemCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	parts := strings.Split(input, ",")
	var selected []int
	seen := make(map[int]bool)

	for _, part := range parts {
		part = strings.TrimSpace(part)
		index, err := strconv.Atoi(part)
		if err != nil || index < 1 || index > itemCount {
			continue
		}
		zeroIdx := index - 1
		if !seen[zeroIdx] {
			selected = append(selected, zeroIdx)
			seen[zeroIdx] = true
		}
	}

	return selected
}

// PromptPullRequests lists prs on out with 1-based indices and reads a selection from in.
// Used instead of the fuzzy finder when no terminal is attached.
func PromptPullRequests(in io.Reader, out io.Writer, prs []model.PullRequest) []model.PullRequest {
	for i, pr := range prs {
		fmt.Fprintf(out, "  %d. %s\n", i+1, FormatPullRequestFinderLine(pr))
	}

	idxs := PromptSelection(in, out, "Select pull requests ('all', 'none' or e.g. 1,3): ", len(prs))
	fmt.Fprintln(out)
	if len(idxs) == 0 {
		return nil
	}
	return pick(prs, idxs)
}
