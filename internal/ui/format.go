package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjulian5/changelog/internal/model"
)

// Truncate truncates text to maxLen with an ellipsis if needed
// Uses lipgloss for proper ANSI-aware width handling
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	width := lipgloss.Width(text)
	if width <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}

	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

func RenderKeyValue(key string, value string) string {
	keyStyled := DimStyle.Render(key + ":")
	return fmt.Sprintf("%s %s", keyStyled, value)
}

// Pluralize returns singular when n is 1 and plural otherwise
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// FormatDuration renders d as milliseconds below one second, seconds otherwise
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// FormatMemory renders a byte count using binary units
func FormatMemory(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// RangeDescription describes the span of a changelog, e.g. "since 1.0.0"
// or "between 1.0.0 and 1.1.0"
func RangeDescription(r *model.Range) string {
	if !r.HasEndReference() {
		return fmt.Sprintf("since %s", r.StartReference())
	}
	return fmt.Sprintf("between %s and %s", r.StartReference(), r.EndReference())
}

// FormatPullRequestFinderLine formats a pull request for fuzzy finder display.
// Fuzzy finder doesn't support ANSI codes, so we use plain text.
func FormatPullRequestFinderLine(pr model.PullRequest) string {
	line := fmt.Sprintf("#%d %s", pr.Number, pr.Title)
	if pr.HasAuthor() {
		line += fmt.Sprintf(" (@%s)", pr.Author.Login)
	}
	return line
}

// FormatPullRequestPreview formats a pull request for the fuzzy finder preview window.
// Preview pane supports ANSI codes, so we can use styling.
func FormatPullRequestPreview(pr model.PullRequest) string {
	lines := []string{
		RenderKeyValue("Number", NumberStyle.Render(fmt.Sprintf("#%d", pr.Number))),
		RenderKeyValue("Title", Bold(pr.Title)),
	}
	if pr.HasAuthor() {
		lines = append(lines,
			RenderKeyValue("Author", pr.Author.Login),
			RenderKeyValue("Profile", Highlight(pr.Author.URL)),
		)
	}
	return strings.Join(lines, "\n")
}
