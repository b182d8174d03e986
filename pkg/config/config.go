// Package config provides centralized configuration management for the Glue catalog MCP server.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the server reads,
// e.g. GLUE_MCP_SERVER_BIND_ADDRESS.
const EnvPrefix = "GLUE_MCP"

// DefaultBindAddress is where the SSE transport listens when nothing else is configured.
const DefaultBindAddress = "127.0.0.1:8000"

// Config holds the complete configuration for the application
type Config struct {
	Server struct {
		BindAddress string `mapstructure:"bind_address"`
		BaseURL     string `mapstructure:"base_url"`
		DemoSurface bool   `mapstructure:"demo_surface"`
	} `mapstructure:"server"`

	// AWS client configuration. Everything is optional; the SDK falls back
	// to its ambient credential and region resolution.
	AWS struct {
		Region          string `mapstructure:"region"`
		Profile         string `mapstructure:"profile"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		SessionToken    string `mapstructure:"session_token"`
	} `mapstructure:"aws"`

	Catalog struct {
		CatalogID          string        `mapstructure:"catalog_id"`
		HealthCheck        bool          `mapstructure:"health_check"`
		HealthCheckTimeout time.Duration `mapstructure:"health_check_timeout"`
	} `mapstructure:"catalog"`

	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"metrics"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.bind_address", DefaultBindAddress)
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.demo_surface", false)

	v.SetDefault("aws.region", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("aws.session_token", "")

	v.SetDefault("catalog.catalog_id", "")
	v.SetDefault("catalog.health_check", true)
	v.SetDefault("catalog.health_check_timeout", 10*time.Second)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads the configuration from v. Environment variables use the
// GLUE_MCP_ prefix with dots replaced by underscores. If configFile is not
// empty it is read as well; values from the environment take precedence.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://" + cfg.Server.BindAddress
	}

	return cfg, nil
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Server.BindAddress == "" {
		errs = append(errs, errors.New("server.bind_address must not be empty"))
	}

	if c.Server.BaseURL != "" {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("server.base_url %q is not an absolute URL", c.Server.BaseURL))
		}
	}

	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		errs = append(errs, errors.New("aws.access_key_id and aws.secret_access_key must be set together"))
	}

	if c.Catalog.HealthCheck && c.Catalog.HealthCheckTimeout <= 0 {
		errs = append(errs, errors.New("catalog.health_check_timeout must be positive"))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of text, json", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
