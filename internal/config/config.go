// Package config handles configuration loading for sectorwatch.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	News    NewsConfig    `mapstructure:"news"    yaml:"news"`
	Data    DataConfig    `mapstructure:"data"    yaml:"data"`
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Auth    AuthConfig    `mapstructure:"auth"    yaml:"auth"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// NewsConfig holds feed polling and caching settings.
type NewsConfig struct {
	CacheTTLSec     int      `mapstructure:"cache_ttl"         yaml:"cache_ttl"`         // seconds
	FreshnessHours  int      `mapstructure:"freshness_hours"   yaml:"freshness_hours"`   // drop older entries
	FeedTimeoutSec  int      `mapstructure:"feed_timeout_sec"  yaml:"feed_timeout_sec"`  // per-feed fetch bound
	MaxPerFeed      int      `mapstructure:"max_per_feed"      yaml:"max_per_feed"`
	ExtraFeeds      []string `mapstructure:"extra_feeds"       yaml:"extra_feeds"`       // name=url pairs appended to the defaults
	DisableFeeds    []string `mapstructure:"disable_feeds"     yaml:"disable_feeds"`     // feed names dropped from the defaults
	SummarizePerSec int      `mapstructure:"summarize_per_sec" yaml:"summarize_per_sec"`
}

// DataConfig holds on-disk storage locations.
type DataConfig struct {
	Dir        string `mapstructure:"dir"         yaml:"dir"`         // users.json and watchlists live here
	CompanyCSV string `mapstructure:"company_csv" yaml:"company_csv"` // optional override of the embedded table
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// AuthConfig holds session settings.
type AuthConfig struct {
	SessionTTLMin int `mapstructure:"session_ttl_min" yaml:"session_ttl_min"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Addr returns the host:port the API server binds to.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.sectorwatch/config.yaml (home directory)
//  3. /etc/sectorwatch/config.yaml (system)
//
// Environment variables override config file values.
// Format: SECTORWATCH_<SECTION>_<KEY>, e.g., SECTORWATCH_API_PORT
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".sectorwatch"))
	v.AddConfigPath("/etc/sectorwatch")

	v.SetEnvPrefix("SECTORWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("SECTORWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// News defaults
	v.SetDefault("news.cache_ttl", 600)       // 10 minutes
	v.SetDefault("news.freshness_hours", 50)  // wider than a day for weekend lulls
	v.SetDefault("news.feed_timeout_sec", 30)
	v.SetDefault("news.max_per_feed", 20)
	v.SetDefault("news.summarize_per_sec", 2)

	// Data defaults
	v.SetDefault("data.dir", "./user_data")

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Auth defaults
	v.SetDefault("auth.session_ttl_min", 720) // 12 hours

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
