// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session goes to the OS keychain.
//
// Sources, later wins: built-in defaults, config.json, an optional .env file
// in the working directory, then VAGAS_* environment variables. Command-line
// flags are applied on top by the cmd package.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"vagas/cli/internal/xdg"
)

// Defaults.
const (
	DefaultAPIURL    = "http://localhost:3000"
	DefaultTimeout   = 10 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIURL    string   `json:"api_url" env:"VAGAS_API_URL"`
	Timeout   Duration `json:"timeout" env:"VAGAS_TIMEOUT"`
	LogLevel  string   `json:"log_level" env:"VAGAS_LOG_LEVEL"`
	LogFormat string   `json:"log_format" env:"VAGAS_LOG_FORMAT"`
}

// Duration is a time.Duration that reads and writes as "10s" in both JSON and env.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		Timeout:   Duration(DefaultTimeout),
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file yields defaults overlaid by env.
// The result is validated.
func Load() (Config, error) {
	c, err := Read()
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Read is Load without validation, for commands that inspect or repair
// a broken configuration.
func Read() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}

	// .env is optional.
	_ = godotenv.Load()

	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// LoadFile reads only the config file on top of defaults, ignoring env.
func LoadFile() (Config, error) {
	c := Defaults()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Validate checks that the API URL is an absolute http(s) URL and the timeout is positive.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q: expected http(s)://host[:port]", c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", c.Timeout.Std())
	}
	return nil
}

// Keys lists the settings accepted by Set.
var Keys = []string{"api-url", "timeout", "log-level", "log-format"}

// Set updates one setting by its CLI key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api-url":
		c.APIURL = strings.TrimRight(value, "/")
	case "timeout":
		var d Duration
		if err := d.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		c.Timeout = d
	case "log-level":
		c.LogLevel = value
	case "log-format":
		if value != "console" && value != "json" {
			return fmt.Errorf("invalid log format %q: expected console or json", value)
		}
		c.LogFormat = value
	default:
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return c.Validate()
}
