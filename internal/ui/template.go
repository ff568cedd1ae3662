package ui

import (
	"strconv"
	"strings"

	"github.com/bjulian5/changelog/internal/model"
)

// RenderTemplate substitutes pull request fields into a line template.
//
// Placeholders:
//
//	%title%       pull request title
//	%number%      pull request number (%id% is an alias)
//	%url%         pull request web URL, empty when unknown
//	%author%      author login, empty when unknown
//	%author_url%  author profile URL, empty when unknown
//
// Substitution is a single pass, so placeholders inside a title stay literal.
func RenderTemplate(template string, pr model.PullRequest) string {
	var login, url string
	if pr.HasAuthor() {
		login = pr.Author.Login
		url = pr.Author.URL
	}

	number := strconv.Itoa(pr.Number)
	return strings.NewReplacer(
		"%title%", pr.Title,
		"%number%", number,
		"%id%", number,
		"%url%", pr.URL,
		"%author%", login,
		"%author_url%", url,
	).Replace(template)
}

// RenderTemplateLines renders one line per pull request
func RenderTemplateLines(template string, prs []model.PullRequest) string {
	lines := make([]string, 0, len(prs))
	for _, pr := range prs {
		lines = append(lines, RenderTemplate(template, pr))
	}
	return strings.Join(lines, "\n")
}
