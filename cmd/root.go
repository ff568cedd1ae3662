package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/changelog/cmd/generate"
	"github.com/bjulian5/changelog/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Changelog generator for GitHub repositories",
	Long: `Changelog builds a changelog from the pull requests merged into a GitHub
repository between two references.

It talks to GitHub through the gh CLI, so an authenticated gh or a token in
GITHUB_TOKEN is all it needs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&generate.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
