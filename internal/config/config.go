// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	YouTube  YouTubeConfig  `yaml:"youtube"`
	Cache    CacheConfig    `yaml:"cache"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// YouTubeConfig defines YouTube Data API settings.
type YouTubeConfig struct {
	APIKey     string          `yaml:"api_key"`
	BaseURL    string          `yaml:"base_url"`
	MaxResults int             `yaml:"max_results"`
	Timeout    time.Duration   `yaml:"timeout"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines YouTube API rate and quota limits.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyUnits int64   `yaml:"daily_units"`
}

// CacheConfig defines the optional Redis search cache. An empty RedisURL
// disables caching.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url"`
	TTL      time.Duration `yaml:"ttl"`
}

// Enabled reports whether a cache is configured.
func (c *CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	BackfillInterval time.Duration `yaml:"backfill_interval"`
	BackfillBatch    int           `yaml:"backfill_batch"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file in the working directory is
// loaded first; variables already set in the environment take precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyYouTubeDefaults(&cfg.YouTube)
	applyCacheDefaults(&cfg.Cache)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyYouTubeDefaults(y *YouTubeConfig) {
	if y.BaseURL == "" {
		y.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if y.MaxResults == 0 {
		y.MaxResults = 4
	}
	if y.Timeout == 0 {
		y.Timeout = 10 * time.Second
	}
	if y.RateLimit.PerSecond == 0 {
		y.RateLimit.PerSecond = 5.0
	}
	if y.RateLimit.Burst == 0 {
		y.RateLimit.Burst = 10
	}
	if y.RateLimit.DailyUnits == 0 {
		y.RateLimit.DailyUnits = 10000
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.TTL == 0 {
		c.TTL = 15 * time.Minute
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.BackfillInterval == 0 {
		s.BackfillInterval = 30 * time.Minute
	}
	if s.BackfillBatch == 0 {
		s.BackfillBatch = 50
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if cfg.YouTube.APIKey == "" {
		errs = append(errs, errors.New("youtube.api_key is required"))
	}
	if cfg.YouTube.MaxResults < 1 || cfg.YouTube.MaxResults > 50 {
		errs = append(errs, fmt.Errorf("youtube.max_results must be between 1 and 50 (got %d)", cfg.YouTube.MaxResults))
	}
	if cfg.YouTube.RateLimit.PerSecond < 0 || cfg.YouTube.RateLimit.Burst < 0 || cfg.YouTube.RateLimit.DailyUnits < 0 {
		errs = append(errs, errors.New("youtube.rate_limit values must not be negative"))
	}

	if cfg.Schedule.BackfillInterval < time.Minute {
		errs = append(errs, fmt.Errorf("schedule.backfill_interval must be at least 1m (got %s)", cfg.Schedule.BackfillInterval))
	}
	if cfg.Schedule.BackfillBatch < 1 || cfg.Schedule.BackfillBatch > 500 {
		errs = append(errs, fmt.Errorf("schedule.backfill_batch must be between 1 and 500 (got %d)", cfg.Schedule.BackfillBatch))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
