// Package config loads changelog settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "CHANGELOG"
	configName = ".changelog"
)

// Options tells Load where to look. Zero values use the defaults.
type Options struct {
	// Flags whose names match config keys (with "-" for "_") override every other source when set
	Flags *pflag.FlagSet
	// ConfigFile is an explicit config file; otherwise .changelog.yaml in the working or home directory
	ConfigFile string
	// EnvFile is loaded into the environment without overriding existing variables
	EnvFile string
}

// Load reads configuration from flags, environment, config file and defaults,
// in that order of precedence.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("auth_token", "")
	v.SetDefault("template", DefaultTemplate)
	v.SetDefault("format", FormatText)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("per_page", DefaultPerPage)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("reverse", true)
}

func bindEnvs(v *viper.Viper) error {
	// The token also honours the variables gh itself reads
	if err := v.BindEnv("auth_token", envPrefix+"_AUTH_TOKEN", "GITHUB_TOKEN", "GH_TOKEN"); err != nil {
		return fmt.Errorf("bind auth_token: %w", err)
	}
	return nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "changelog"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := []string{
		"auth_token",
		"template",
		"format",
		"timeout",
		"concurrency",
		"per_page",
		"log_level",
		"reverse",
	}

	for _, key := range keys {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}
	return nil
}
