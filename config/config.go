// Package config manages resolver configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for the HTTP transport and logging used by the resolver.
type Config struct {
	// BaseURL is the metadata API host (default: "https://yt.lemnoslife.com")
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Timeout bounds a single HTTP request, including reading the body
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// UserAgent is sent with every request
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	// MaxIdleConns is the maximum number of idle connections across all hosts
	MaxIdleConns int `json:"max_idle_conns" yaml:"max_idle_conns"`
	// MaxIdleConnsPerHost is the maximum number of idle connections per host
	MaxIdleConnsPerHost int `json:"max_idle_conns_per_host" yaml:"max_idle_conns_per_host"`
	// IdleConnTimeout is how long an idle connection stays in the pool
	IdleConnTimeout time.Duration `json:"idle_conn_timeout" yaml:"idle_conn_timeout"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level" yaml:"log_level"`
	// LogFormat is text or json
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:             "https://yt.lemnoslife.com",
		Timeout:             30 * time.Second,
		UserAgent:           "ytresolve/1.0",
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// fileNames are tried in order inside each search directory.
var fileNames = []string{"ytresolve.json", "ytresolve.yaml", "ytresolve.yml"}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(searchDirs()); err != nil {
		// Config file is optional
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads configuration from a single file on top of the defaults.
// Environment variables still take precedence over the file.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "ytresolve"))
	}
	return dirs
}

// loadFromFile reads the first config file found in dirs.
func (c *Config) loadFromFile(dirs []string) error {
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return err
			}
			return c.decode(path, data)
		}
	}

	return os.ErrNotExist
}

func (c *Config) decode(path string, data []byte) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("YTRESOLVE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("YTRESOLVE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("YTRESOLVE_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("YTRESOLVE_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("YTRESOLVE_MAX_IDLE_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("YTRESOLVE_MAX_IDLE_CONNS: %w", err)
		}
		c.MaxIdleConns = n
	}
	if v := os.Getenv("YTRESOLVE_IDLE_CONN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("YTRESOLVE_IDLE_CONN_TIMEOUT: %w", err)
		}
		c.IdleConnTimeout = d
	}
	if v := os.Getenv("YTRESOLVE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("YTRESOLVE_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url scheme must be http or https, got %q", u.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max_idle_conns must be non-negative")
	}
	if c.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("max_idle_conns_per_host must be non-negative")
	}
	if c.IdleConnTimeout < 0 {
		return fmt.Errorf("idle_conn_timeout must be non-negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
