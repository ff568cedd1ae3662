package ui

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/model"
)

// RenderOptions controls how a Range is rendered
type RenderOptions struct {
	Format   string // one of config.Formats
	Template string // line template for the text format
	Reverse  bool   // oldest first instead of discovery order
}

// rangeDocument is the JSON and YAML shape of a Range
type rangeDocument struct {
	Start        string              `json:"start" yaml:"start"`
	End          string              `json:"end,omitempty" yaml:"end,omitempty"`
	Count        int                 `json:"count" yaml:"count"`
	PullRequests []model.PullRequest `json:"pull_requests" yaml:"pull_requests"`
}

// RenderRange renders the pull requests of r in the requested format
func RenderRange(r *model.Range, opts RenderOptions) (string, error) {
	prs := r.PullRequests()
	if opts.Reverse {
		prs = r.Reversed()
	}

	switch opts.Format {
	case config.FormatText, "":
		return RenderTemplateLines(opts.Template, prs), nil
	case config.FormatTable:
		return RenderPullRequestTable(prs), nil
	case config.FormatJSON:
		data, err := json.MarshalIndent(newRangeDocument(r, prs), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal range: %w", err)
		}
		return string(data), nil
	case config.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(newRangeDocument(r, prs)); err != nil {
			return "", fmt.Errorf("failed to marshal range: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("failed to marshal range: %w", err)
		}
		return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
	default:
		return "", fmt.Errorf("unknown format %q", opts.Format)
	}
}

func newRangeDocument(r *model.Range, prs []model.PullRequest) rangeDocument {
	if prs == nil {
		prs = []model.PullRequest{}
	}
	return rangeDocument{
		Start:        r.StartReference(),
		End:          r.EndReference(),
		Count:        len(prs),
		PullRequests: prs,
	}
}

// IsStructured reports whether format is meant for machines, in which case
// banners and footers are suppressed
func IsStructured(format string) bool {
	return format == config.FormatJSON || format == config.FormatYAML
}
