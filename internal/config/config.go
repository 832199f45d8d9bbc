// Package config loads layered service configuration: struct defaults,
// then an optional YAML file, then BEACHMATE_ environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/beachmate/beachmate/internal/location"
	"github.com/beachmate/beachmate/internal/recommend"
)

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "BEACHMATE_CONFIG"

// envPrefix scopes the environment layer. Nesting uses a double
// underscore so snake_case keys survive: BEACHMATE_SERVER__PORT maps to
// server.port, BEACHMATE_RECOMMEND__MAX_RESULTS to recommend.max_results.
const envPrefix = "BEACHMATE_"

// defaultConfigPaths is searched in order; the first existing file wins.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/beachmate/config.yaml",
	"/etc/beachmate/config.yml",
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Env             string        `koanf:"env"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RequireTLS      bool          `koanf:"require_tls"`

	// RateLimit is requests per minute per client IP on standard
	// endpoints; zero keeps the built-in default.
	RateLimit int `koanf:"rate_limit"`
}

// TelemetryConfig holds the OpenTelemetry exporter settings.
type TelemetryConfig struct {
	Enabled      bool   `koanf:"enabled"`
	OTLPEndpoint string `koanf:"otlp_endpoint"`
}

// AdapterConfig points one location type at its upstream dataset service.
// Both fields empty means bundled data only.
type AdapterConfig struct {
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`
}

// UpstreamConfig shapes the shared resilient HTTP client.
type UpstreamConfig struct {
	Timeout     time.Duration `koanf:"timeout"`
	MaxRetries  int           `koanf:"max_retries"`
	OpenTimeout time.Duration `koanf:"open_timeout"`
}

// WeatherConfig holds the weather provider settings.
type WeatherConfig struct {
	// Provider selects the snapshot source. Only "busanmock" ships today.
	Provider string        `koanf:"provider"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// RecommendConfig shapes the recommendation pipeline.
type RecommendConfig struct {
	Timeout    time.Duration     `koanf:"timeout"`
	MaxResults int               `koanf:"max_results"`
	Weights    recommend.Weights `koanf:"weights"`
}

// CacheConfig holds the in-memory cache settings.
type CacheConfig struct {
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// Config is the root of the service configuration tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Cache     CacheConfig     `koanf:"cache"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Weather   WeatherConfig   `koanf:"weather"`
	Recommend RecommendConfig `koanf:"recommend"`

	// Adapters is keyed by location type.
	Adapters map[string]AdapterConfig `koanf:"adapters"`
}

func defaultConfig() *Config {
	adapters := make(map[string]AdapterConfig, len(location.AllTypes()))
	for _, typ := range location.AllTypes() {
		adapters[string(typ)] = AdapterConfig{}
	}

	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Env:             "development",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RequireTLS:      false,
			RateLimit:       120,
		},
		Telemetry: TelemetryConfig{
			Enabled:      false,
			OTLPEndpoint: "localhost:4317",
		},
		Cache: CacheConfig{
			SweepInterval: 5 * time.Minute,
		},
		Upstream: UpstreamConfig{
			Timeout:     10 * time.Second,
			MaxRetries:  3,
			OpenTimeout: 60 * time.Second,
		},
		Weather: WeatherConfig{
			Provider: "busanmock",
			CacheTTL: 10 * time.Minute,
		},
		Recommend: RecommendConfig{
			Timeout:    10 * time.Second,
			MaxResults: 10,
			Weights:    recommend.DefaultWeights(),
		},
		Adapters: adapters,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment, in that precedence order (environment wins).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Recommend.MaxResults < 1 {
		return fmt.Errorf("recommend.max_results must be at least 1")
	}
	if c.Weather.Provider != "busanmock" {
		return fmt.Errorf("unknown weather provider %q", c.Weather.Provider)
	}
	for name, adapter := range c.Adapters {
		if _, err := location.ParseType(name); err != nil {
			return fmt.Errorf("adapters.%s: %w", name, err)
		}
		if adapter.BaseURL == "" && adapter.APIKey != "" {
			return fmt.Errorf("adapters.%s: api_key set without base_url", name)
		}
	}
	return nil
}

// Adapter returns the upstream settings for one location type; the zero
// value (bundled data only) when unconfigured.
func (c *Config) Adapter(typ location.Type) AdapterConfig {
	return c.Adapters[string(typ)]
}
