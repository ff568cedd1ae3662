package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjulian5/changelog/internal/changelog"
	"github.com/bjulian5/changelog/internal/common"
	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/model"
	"github.com/bjulian5/changelog/internal/ui"
)

// Command generates a changelog from the pull requests merged between two references
type Command struct {
	Owner      string
	Repository string
	StartRef   string
	EndRef     string

	// Flags
	Select  bool
	Verbose bool

	// Resolved settings and clients (can be set directly in tests)
	Config   *config.Config
	Log      *zap.SugaredLogger
	Resolver *changelog.Resolver

	// In is read for the selection prompt when no terminal is attached
	In io.Reader
}

func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "generate <owner> <repository> <start-reference> [<end-reference>]",
		Short: "Generate a changelog from merged pull requests",
		Long: `Generate a changelog from the pull requests merged between two references.

References can be tags, branches or commit SHAs. Without an end reference the
repository's default branch is used. Pull requests are discovered from the
"Merge pull request #N" commits GitHub creates for merge-commit merges.

Template placeholders: %title%, %number% (or %id%), %url%, %author%, %author_url%

Example:
  changelog generate localheinz github-changelog 0.1.0 0.2.0
  changelog generate localheinz github-changelog 0.1.0 --format table
  changelog generate localheinz github-changelog 0.1.0 -t '* %title% by @%author%'`,
		Args: cobra.RangeArgs(3, 4),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			c.Owner, c.Repository, c.StartRef = args[0], args[1], args[2]
			if len(args) == 4 {
				c.EndRef = args[3]
			}

			cfg, err := config.Load(config.Options{Flags: cobraCmd.Flags()})
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			c.Config = cfg

			c.Log, c.Resolver, err = common.InitClients(cfg, c.Verbose)
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			c.In = cobraCmd.InOrStdin()
			return c.Run(cobraCmd.Context())
		},
	}

	flags := command.Flags()
	flags.StringP("auth-token", "a", "", "GitHub token (defaults to CHANGELOG_AUTH_TOKEN, GITHUB_TOKEN, GH_TOKEN or the gh login)")
	flags.StringP("template", "t", config.DefaultTemplate, "Line template for text output")
	flags.String("format", config.FormatText, fmt.Sprintf("Output format %v", config.Formats))
	flags.Duration("timeout", config.DefaultTimeout, "Overall deadline for GitHub calls (0 disables)")
	flags.Int("concurrency", config.DefaultConcurrency, "Pull requests fetched in parallel")
	flags.Int("per-page", config.DefaultPerPage, "Commits requested per page (1-100)")
	flags.Bool("reverse", true, "List oldest pull requests first")
	flags.String("log-level", config.DefaultLogLevel, "Diagnostic log level")
	flags.BoolVar(&c.Select, "select", false, "Pick the pull requests to include")
	flags.BoolVarP(&c.Verbose, "verbose", "v", false, "Log diagnostics at debug level")

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	timer := common.StartTimer()
	structured := ui.IsStructured(c.Config.Format)

	if c.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Config.Timeout)
		defer cancel()
	}

	r, err := c.Resolver.Resolve(ctx, c.Owner, c.Repository, c.StartRef, c.EndRef)
	if err != nil {
		return c.describe(err)
	}

	if !structured {
		ui.Title("GitHub Changelog")
		ui.Header(fmt.Sprintf("Pull Requests for %s/%s %s", c.Owner, c.Repository, ui.RangeDescription(r)))
		ui.Newline()
	}

	switch {
	case r.IsEmpty():
		ui.WarningTo(c.notices(), "Could not find any pull requests")
	case c.Select:
		r, err = c.selectPullRequests(r)
		if err != nil {
			return fmt.Errorf("failed to select pull requests: %w", err)
		}
		if r.IsEmpty() {
			ui.WarningTo(c.notices(), "No pull requests selected")
		}
	}

	// Structured formats print a document even when it is empty
	if r.IsEmpty() && !structured {
		return nil
	}

	out, err := ui.RenderRange(r, ui.RenderOptions{
		Format:   c.Config.Format,
		Template: c.Config.Template,
		Reverse:  c.Config.Reverse,
	})
	if err != nil {
		return fmt.Errorf("failed to render changelog: %w", err)
	}
	ui.Print(out)

	if !structured {
		ui.Newline()
		ui.Successf("Found %d %s.", r.Count(), ui.Pluralize(r.Count(), "pull request", "pull requests"))
		ui.Print(ui.Dim(timer.Summary()))
	}

	c.Log.Debugw("generated changelog", "pull_requests", r.Count(), "elapsed", timer.Elapsed())
	return nil
}

// notices is where prompts and warnings go: stderr for structured formats, so
// stdout carries only the document
func (c *Command) notices() io.Writer {
	if ui.IsStructured(c.Config.Format) {
		return ui.Stderr
	}
	return ui.Stdout
}

// selectPullRequests narrows r to the pull requests the user picks.
// The result is empty when nothing was picked.
func (c *Command) selectPullRequests(r *model.Range) (*model.Range, error) {
	var picked []model.PullRequest
	if ui.IsInteractive() {
		var err error
		picked, err = ui.SelectPullRequests(r.PullRequests())
		if err != nil {
			return nil, err
		}
	} else {
		in := c.In
		if in == nil {
			in = os.Stdin
		}
		picked = ui.PromptPullRequests(in, c.notices(), r.PullRequests())
	}

	keep := make(map[int]bool, len(picked))
	for _, pr := range picked {
		keep[pr.Number] = true
	}
	return r.Select(keep), nil
}

// describe turns a resolution failure into the message shown to the user
func (c *Command) describe(err error) error {
	var validationErr *model.ValidationError
	var apiErr *gh.APIError

	switch {
	case errors.Is(err, changelog.ErrInvalidArgument) && errors.As(err, &validationErr):
		return &InvalidRepositoryError{Owner: c.Owner, Repository: c.Repository, Err: err}
	case errors.Is(err, changelog.ErrInvalidArgument):
		return &InvalidReferenceError{Reference: c.StartRef, Err: err}
	case errors.Is(err, changelog.ErrTimeout):
		return fmt.Errorf("An error occurred: GitHub did not answer within %s: %w", c.Config.Timeout, err)
	case errors.As(err, &apiErr) && apiErr.IsRateLimited():
		return fmt.Errorf("An error occurred: GitHub rate limit reached, pass --auth-token or set GITHUB_TOKEN: %w", err)
	default:
		return fmt.Errorf("An error occurred: %w", err)
	}
}

// InvalidRepositoryError is returned when owner or repository are rejected
type InvalidRepositoryError struct {
	Owner      string
	Repository string
	Err        error
}

func (e *InvalidRepositoryError) Error() string {
	return fmt.Sprintf("Owner %q and repository %q appear to be invalid.", e.Owner, e.Repository)
}

func (e *InvalidRepositoryError) Unwrap() error {
	return e.Err
}

// InvalidReferenceError is returned when the start reference is rejected
type InvalidReferenceError struct {
	Reference string
	Err       error
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("Start reference %q appears to be invalid.", e.Reference)
}

func (e *InvalidReferenceError) Unwrap() error {
	return e.Err
}
