package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Every key can be set in an
// optional config.yaml or overridden by the environment variable of the same name.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	ServiceName   string `mapstructure:"SERVICE_NAME"`
	Environment   string `mapstructure:"ENVIRONMENT"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	StoreDSN    string `mapstructure:"STORE_DSN"`

	SeedEnabled    bool  `mapstructure:"SEED_ENABLED"`
	SeedFakePhotos int   `mapstructure:"SEED_FAKE_PHOTOS"`
	SeedFakeSeed   int64 `mapstructure:"SEED_FAKE_SEED"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	MetricsEnabled  bool    `mapstructure:"METRICS_ENABLED"`
	OTelEnabled     bool    `mapstructure:"OTEL_ENABLED"`
	OTLPEndpoint    string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure    bool    `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OTelSampleRatio float64 `mapstructure:"OTEL_SAMPLE_RATIO"`

	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	ContactFrom  string `mapstructure:"CONTACT_FROM"`
	ContactTo    string `mapstructure:"CONTACT_TO"`

	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       int    `mapstructure:"SMTP_PORT"`
	SMTPUsername   string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword   string `mapstructure:"SMTP_PASSWORD"`
	SMTPTLS        bool   `mapstructure:"SMTP_TLS"`
	SMTPSkipVerify bool   `mapstructure:"SMTP_SKIP_VERIFY"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

// Default configuration
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"SERVER_ADDRESS":              ":5000",
		"SERVICE_NAME":                "netra-gallery",
		"ENVIRONMENT":                 "development",
		"STORE_DRIVER":                "memory",
		"STORE_DSN":                   "",
		"SEED_ENABLED":                true,
		"SEED_FAKE_PHOTOS":            0,
		"SEED_FAKE_SEED":              2023,
		"LOG_LEVEL":                   "info",
		"LOG_FORMAT":                  "json",
		"METRICS_ENABLED":             true,
		"OTEL_ENABLED":                false,
		"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": true,
		"OTEL_SAMPLE_RATIO":           1.0,
		"RESEND_API_KEY":              "",
		"CONTACT_FROM":                "NETRA Gallery <gallery@netra.club>",
		"CONTACT_TO":                  "netra@netra.club",
		"SMTP_HOST":                   "",
		"SMTP_PORT":                   587,
		"SMTP_USERNAME":               "",
		"SMTP_PASSWORD":               "",
		"SMTP_TLS":                    false,
		"SMTP_SKIP_VERIFY":            false,
		"ADMIN_USERNAME":              "",
		"ADMIN_PASSWORD":              "",
	}
}

// Load reads configuration from the file at path, or from an optional
// config.yaml in the working directory when path is empty, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration can start a server
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return errors.New("SERVER_ADDRESS is required")
	}

	switch c.StoreDriver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("STORE_DRIVER must be memory or sqlite, got %q", c.StoreDriver)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.IsProduction() && c.LogFormat == "console" {
		return errors.New("LOG_FORMAT must be json when ENVIRONMENT is production")
	}

	if c.OTelEnabled && c.OTLPEndpoint == "" {
		return errors.New("OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_ENABLED is set")
	}
	if c.OTelSampleRatio < 0 || c.OTelSampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATIO must be between 0 and 1, got %v", c.OTelSampleRatio)
	}

	if c.SeedFakePhotos < 0 {
		return errors.New("SEED_FAKE_PHOTOS must not be negative")
	}

	if (c.ResendAPIKey != "" || c.SMTPHost != "") && len(c.ContactRecipients()) == 0 {
		return errors.New("CONTACT_TO is required when an email notifier is configured")
	}

	if c.SMTPHost != "" && (c.SMTPPort <= 0 || c.SMTPPort > 65535) {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", c.SMTPPort)
	}

	if c.AdminUsername != "" && len(c.AdminPassword) < 8 {
		return errors.New("ADMIN_PASSWORD must be at least 8 characters when ADMIN_USERNAME is set")
	}

	return nil
}

// ContactRecipients splits CONTACT_TO on commas
func (c *Config) ContactRecipients() []string {
	var out []string
	for _, addr := range strings.Split(c.ContactTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// IsProduction reports whether ENVIRONMENT names a production deployment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
