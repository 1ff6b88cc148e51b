package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "PLANET_DASHBOARD_CONFIG"
	serverAddrEnv  = "PLANET_DASHBOARD_ADDR"
	cachePathEnv   = "PLANET_DASHBOARD_CACHE"
	asterankURLEnv = "ASTERANK_URL"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Source    SourceConfig    `yaml:"source"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// SourceConfig selects and parameterises the record source.
type SourceConfig struct {
	Kind    string        `yaml:"kind"`
	URL     string        `yaml:"url"`
	Query   string        `yaml:"query"`
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
	File    string        `yaml:"file"`
}

// CacheConfig points at the local dataset cache file.
type CacheConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DashboardConfig tunes chart and table payloads.
type DashboardConfig struct {
	PageSize      int `yaml:"pageSize"`
	HistogramBins int `yaml:"histogramBins"`
}

// Load reads YAML configuration from the env-provided path (if present) and
// applies environment overrides.
func Load() Config {
	return LoadFile(os.Getenv(configPathEnv))
}

// LoadFile is Load with an explicit config path; an empty path means defaults.
func LoadFile(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(cachePathEnv); v != "" {
		c.Cache.Path = v
	}

	if v := os.Getenv(asterankURLEnv); v != "" {
		c.Source.URL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.ShutdownTimeout > 0 {
		base.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}

	if override.Source.Kind != "" {
		base.Source.Kind = override.Source.Kind
	}
	if override.Source.URL != "" {
		base.Source.URL = override.Source.URL
	}
	if override.Source.Query != "" {
		base.Source.Query = override.Source.Query
	}
	if override.Source.Limit > 0 {
		base.Source.Limit = override.Source.Limit
	}
	if override.Source.Timeout > 0 {
		base.Source.Timeout = override.Source.Timeout
	}
	if override.Source.File != "" {
		base.Source.File = override.Source.File
	}

	if override.Cache.Path != "" {
		base.Cache.Path = override.Cache.Path
	}
	base.Cache.Disabled = override.Cache.Disabled

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Dashboard.PageSize > 0 {
		base.Dashboard.PageSize = override.Dashboard.PageSize
	}
	if override.Dashboard.HistogramBins > 0 {
		base.Dashboard.HistogramBins = override.Dashboard.HistogramBins
	}

	return base
}

// Params returns the query parameters sent to the asterank endpoint.
func (s SourceConfig) Params() map[string]string {
	return map[string]string{
		"query": s.Query,
		"limit": strconv.Itoa(s.Limit),
	}
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: "0.0.0.0:8000", ShutdownTimeout: 10 * time.Second},
		Source: SourceConfig{
			Kind:    "asterank",
			URL:     "http://asterank.com/api/kepler",
			Query:   "{}",
			Limit:   5000,
			Timeout: 30 * time.Second,
		},
		Cache:     CacheConfig{Path: "./data.db"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
		Dashboard: DashboardConfig{PageSize: 40, HistogramBins: 30},
	}
}
