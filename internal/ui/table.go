package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bjulian5/changelog/internal/model"
)

// columns other than the title take roughly this many cells including borders
const tableChromeWidth = 36

// NewChangelogTable creates a new table with changelog styling defaults
// This is a thin wrapper around lipgloss/table with opinionated defaults
func NewChangelogTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderRow(false).
		BorderColumn(true).
		StyleFunc(defaultTableStyleFunc)
}

// defaultTableStyleFunc provides default styling for table cells
func defaultTableStyleFunc(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return TableHeaderStyle
	case row%2 == 0:
		return TableCellStyle
	default:
		return TableRowAltStyle
	}
}

// RenderPullRequestTable renders pull requests as a table with number, title and author columns
func RenderPullRequestTable(prs []model.PullRequest) string {
	maxTitle := titleWidth()

	t := NewChangelogTable().Headers("#", "Title", "Author")
	for _, pr := range prs {
		author := ""
		if pr.HasAuthor() {
			author = pr.Author.Login
		}
		t.Row(fmt.Sprintf("#%d", pr.Number), Truncate(pr.Title, maxTitle), author)
	}
	return t.String()
}

func titleWidth() int {
	if Display.MaxTitleLength > 0 {
		return Display.MaxTitleLength
	}
	return max(GetTerminalWidth()-tableChromeWidth, Display.MinTitleLength)
}
