// Package config loads ghsearch settings from defaults, an optional config
// file, GHSEARCH_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/inovacc/ghsearch/internal/application"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// StoreBolt keeps preferences in a bbolt file
	StoreBolt = "bolt"

	// StoreSQLite keeps preferences in a SQLite database
	StoreSQLite = "sqlite"

	// DefaultAPIURL is the GitHub REST API base
	DefaultAPIURL = "https://api.github.com/"

	envPrefix = "GHSEARCH"
)

// Config holds the effective configuration.
type Config struct {
	DataDir   string `mapstructure:"data_dir"`
	Store     string `mapstructure:"store"`
	APIURL    string `mapstructure:"api_url"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"data-dir":   "data_dir",
	"store":      "store",
	"api-url":    "api_url",
	"log-level":  "log_level",
	"log-format": "log_format",
	"log-file":   "log_file",
}

// RegisterFlags adds the configuration flags to fs. Flags left unset do not
// override file, environment or default values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("data-dir", "", "Directory for the preference store and logs")
	fs.String("store", "", "Preference store backend (bolt or sqlite)")
	fs.String("api-url", "", "GitHub REST API base URL")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("log-format", "", "Log format (text or json)")
	fs.String("log-file", "", "Write logs to this file instead of the default destination")
}

// Load resolves the configuration. fs may be nil. The config file is looked
// up in the data directory given by flag or environment, falling back to the
// application directory.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaultDir, _ := application.GetApplicationDirectory()

	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("store", StoreBolt)
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}

			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	v.SetConfigName(application.ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("data_dir"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is not set and no user config directory is available")
	}

	switch c.Store {
	case StoreBolt, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreBolt, StoreSQLite)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q (want text or json)", c.LogFormat)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_url %q: scheme must be http or https", c.APIURL)
	}

	return nil
}
