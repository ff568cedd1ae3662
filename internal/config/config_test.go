package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps tests away from real config files and tokens
func isolate(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN", "CHANGELOG_AUTH_TOKEN", "CHANGELOG_TEMPLATE", "CHANGELOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.AuthToken)
	assert.Equal(t, DefaultTemplate, cfg.Template)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 100, cfg.PerPage)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Reverse)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("CHANGELOG_TEMPLATE", "* %title%")
	t.Setenv("CHANGELOG_CONCURRENCY", "8")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "gh-token", cfg.AuthToken)
	assert.Equal(t, "* %title%", cfg.Template)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestLoad_ConfigFileAndFlags(t *testing.T) {
	isolate(t)
	path := writeFile(t, "changelog.yaml", "template: \"+ %title%\"\nformat: table\ntimeout: 5s\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", FormatText, "")
	flags.String("template", DefaultTemplate, "")
	require.NoError(t, flags.Parse([]string{"--format", "json"}))

	cfg, err := Load(Options{Flags: flags, ConfigFile: path})
	require.NoError(t, err)

	// Changed flag beats the file, unchanged flag does not
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "+ %title%", cfg.Template)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_EnvFile(t *testing.T) {
	isolate(t)
	envFile := writeFile(t, "test.env", "CHANGELOG_AUTH_TOKEN=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("CHANGELOG_AUTH_TOKEN") })

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.AuthToken)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Template:    DefaultTemplate,
		Format:      FormatText,
		Timeout:     time.Second,
		Concurrency: 1,
		PerPage:     100,
		LogLevel:    "info",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }},
		{name: "empty template", mutate: func(c *Config) { c.Template = "" }},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }},
		{name: "zero concurrency", mutate: func(c *Config) { c.Concurrency = 0 }},
		{name: "page too large", mutate: func(c *Config) { c.PerPage = 101 }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
