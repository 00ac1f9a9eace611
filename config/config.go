package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Search   SearchConfig   `yaml:"search"`
}

// ServerConfig holds the HTTP facade configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// UpstreamConfig holds the connection settings for the tenants API.
// BaseURL and AuthToken are read once at startup and never mutated.
type UpstreamConfig struct {
	BaseURL        string        `yaml:"base_url"`
	AuthToken      string        `yaml:"auth_token"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
	PageSize       int           `yaml:"page_size"`
}

// SearchConfig holds the keystroke-search tuning.
type SearchConfig struct {
	DebounceMillis int           `yaml:"debounce_millis"`
	Debounce       time.Duration `yaml:"-"` // Ignored by YAML parser
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("upstream.base_url must be set")
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	if cfg.Upstream.TimeoutSeconds <= 0 {
		cfg.Upstream.TimeoutSeconds = 30
	}
	cfg.Upstream.Timeout = time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second

	if cfg.Upstream.PageSize <= 0 {
		cfg.Upstream.PageSize = 20
	}

	if cfg.Search.DebounceMillis <= 0 {
		cfg.Search.DebounceMillis = 500
	}
	cfg.Search.Debounce = time.Duration(cfg.Search.DebounceMillis) * time.Millisecond

	return &cfg, nil
}
