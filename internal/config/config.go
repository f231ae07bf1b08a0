// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/pkg/pricing"
	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Ebay      EbayConfig      `yaml:"ebay"`
	Fees      FeesConfig      `yaml:"fees"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Notify    NotifyConfig    `yaml:"notify"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
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
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings for the market data source.
type EbayConfig struct {
	AppID       string          `yaml:"app_id"`
	CertID      string          `yaml:"cert_id"`
	TokenURL    string          `yaml:"token_url"`
	BrowseURL   string          `yaml:"browse_url"`
	Marketplace string          `yaml:"marketplace"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// FeesConfig defines the global fee defaults and per-category overrides.
type FeesConfig struct {
	FeeRate          float64                           `yaml:"fee_rate"`
	ShippingEstimate float64                           `yaml:"shipping_estimate"`
	ShippingPaid     float64                           `yaml:"shipping_paid"`
	Categories       map[domain.Category]fees.Override `yaml:"categories"`
}

// Defaults returns the global FeeConfig from this section.
func (f *FeesConfig) Defaults() pricing.FeeConfig {
	return pricing.FeeConfig{
		FeeRate:          f.FeeRate,
		ShippingEstimate: f.ShippingEstimate,
		ShippingPaid:     f.ShippingPaid,
	}
}

// EstimatorConfig defines estimation parameters.
type EstimatorConfig struct {
	BinFactor    float64       `yaml:"bin_factor"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	SampleLimit  int           `yaml:"sample_limit"`
	HistoryLimit int           `yaml:"history_limit"`
}

// ScheduleConfig defines cron intervals for the refresh engine.
type ScheduleConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	StaggerOffset   time.Duration `yaml:"stagger_offset"`
}

// NotifyConfig defines value-change notification settings. Notifications
// are disabled when no webhook is set.
type NotifyConfig struct {
	DiscordWebhook     string  `yaml:"discord_webhook"`
	ChangeThresholdPct float64 `yaml:"change_threshold_pct"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
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
	applyEbayDefaults(&cfg.Ebay)
	applyFeesDefaults(&cfg.Fees)
	applyEstimatorDefaults(&cfg.Estimator)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotifyDefaults(&cfg.Notify)
	applyTelemetryDefaults(&cfg.Telemetry)
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

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyFeesDefaults(f *FeesConfig) {
	if f.FeeRate == 0 {
		f.FeeRate = 0.13
	}
	if f.ShippingEstimate == 0 {
		f.ShippingEstimate = 7
	}
}

func applyEstimatorDefaults(e *EstimatorConfig) {
	if e.BinFactor == 0 {
		e.BinFactor = pricing.DefaultBinFactor
	}
	if e.CacheTTL == 0 {
		e.CacheTTL = 5 * time.Minute
	}
	if e.SampleLimit == 0 {
		e.SampleLimit = 50
	}
	if e.HistoryLimit == 0 {
		e.HistoryLimit = 100
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.RefreshInterval == 0 {
		s.RefreshInterval = 6 * time.Hour
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 2 * time.Second
	}
}

func applyNotifyDefaults(n *NotifyConfig) {
	if n.ChangeThresholdPct == 0 {
		n.ChangeThresholdPct = 10
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "resale-radar"
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
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Fees.FeeRate < 0 || cfg.Fees.FeeRate >= 1 {
		errs = append(errs, fmt.Errorf("fees.fee_rate must be in [0,1) (got %v)", cfg.Fees.FeeRate))
	}
	if cfg.Fees.ShippingEstimate < 0 {
		errs = append(errs, fmt.Errorf("fees.shipping_estimate must be >= 0"))
	}
	for cat, o := range cfg.Fees.Categories {
		if o.FeeRate != nil && (*o.FeeRate < 0 || *o.FeeRate >= 1) {
			errs = append(errs, fmt.Errorf("fees.categories.%s.fee_rate must be in [0,1)", cat))
		}
	}

	if cfg.Estimator.BinFactor <= 0 || cfg.Estimator.BinFactor > 1 {
		errs = append(errs, fmt.Errorf(
			"estimator.bin_factor must be in (0,1] (got %v)", cfg.Estimator.BinFactor,
		))
	}

	return errors.Join(errs...)
}
