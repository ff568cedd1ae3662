package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap/zapcore"
)

// Output formats understood by the generate command.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML}

// Defaults applied when no flag, environment variable or config file sets a key.
const (
	// DefaultTemplate renders one pull request per line.
	DefaultTemplate    = "- %title% (#%number%)"
	DefaultTimeout     = 60 * time.Second
	DefaultConcurrency = 4
	DefaultPerPage     = 100
	DefaultLogLevel    = "warn"
)

// Config holds changelog generation settings.
type Config struct {
	AuthToken   string        `mapstructure:"auth_token"`
	Template    string        `mapstructure:"template"`
	Format      string        `mapstructure:"format"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
	PerPage     int           `mapstructure:"per_page"`
	LogLevel    string        `mapstructure:"log_level"`
	Reverse     bool          `mapstructure:"reverse"`
}

// Validate rejects settings the generate command cannot honour.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("format must be one of %v, got %q", Formats, c.Format)
	}
	if c.Template == "" {
		return errors.New("template must not be empty")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if c.PerPage < 1 || c.PerPage > 100 {
		return fmt.Errorf("per_page must be between 1 and 100, got %d", c.PerPage)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
