package changelog

import (
	"regexp"
	"strconv"

	"github.com/bjulian5/changelog/internal/model"
)

// mergeCommitRegex matches the message GitHub writes for merged pull requests,
// e.g. "Merge pull request #42 from owner/feature-x".
var mergeCommitRegex = regexp.MustCompile(`^Merge pull request #(\d+) from \S+`)

// ParseMergeCommit returns the pull request number referenced by a merge commit.
// ok is false for ordinary commits.
func ParseMergeCommit(c model.Commit) (number int, ok bool) {
	match := mergeCommitRegex.FindStringSubmatch(c.Message)
	if len(match) < 2 {
		return 0, false
	}

	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// PullRequestNumbers returns the numbers referenced by merge commits in commit
// order, keeping only the first occurrence of each.
func PullRequestNumbers(commits []model.Commit) []int {
	seen := make(map[int]bool)
	var numbers []int
	for _, c := range commits {
		n, ok := ParseMergeCommit(c)
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
	}
	return numbers
}
