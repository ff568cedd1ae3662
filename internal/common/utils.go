package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bjulian5/changelog/internal/changelog"
	"github.com/bjulian5/changelog/internal/config"
	"github.com/bjulian5/changelog/internal/gh"
	"github.com/bjulian5/changelog/internal/logger"
)

// GenerateRunID generates a 16-character hex id that tags the log lines of one invocation
func GenerateRunID() string {
	u := uuid.New()
	hexStr := strings.ReplaceAll(u.String(), "-", "")
	return hexStr[:16]
}

// InitClients initializes the logger, GitHub client and resolver from cfg.
// Returns an error that is suitable for use in PreRunE hooks
func InitClients(cfg *config.Config, verbose bool) (*zap.SugaredLogger, *changelog.Resolver, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	log, err := logger.New(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logger initialization failed: %w", err)
	}
	log = log.With("run_id", GenerateRunID())

	var ghOpts []gh.Option
	if cfg.AuthToken != "" {
		ghOpts = append(ghOpts, gh.WithToken(cfg.AuthToken))
	}
	ghClient := gh.NewClient(ghOpts...)

	resolver := changelog.NewResolver(ghClient,
		changelog.WithLogger(log),
		changelog.WithConcurrency(cfg.Concurrency),
		changelog.WithPerPage(cfg.PerPage),
	)
	return log, resolver, nil
}
