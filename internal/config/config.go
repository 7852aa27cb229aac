// Package config holds the environment-driven settings for the serve
// command. Everything is optional: defaults suit a local run.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the runtime configuration for the HTTP façade.
type Config struct {
	Port      int    `mapstructure:"port"`
	GinMode   string `mapstructure:"gin_mode"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from SCHEDULER_-prefixed environment variables.
// The port also honors a bare PORT variable for hosting platforms that
// inject one.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8000)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	if err := v.BindEnv("port", "SCHEDULER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin_mode %q: expected debug, release or test", c.GinMode)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log_format %q: expected json or text", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
