package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/bfhl/internal/core/domain"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content, applies defaults and validates the result.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	var cfg AppConfig
	cfg.applyDefaults()
	return &cfg
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
		c.Server.RateBurst = int(c.Server.RateLimit)
		if c.Server.RateBurst < 1 {
			c.Server.RateBurst = 1
		}
	}

	if c.Identity == (domain.Identity{}) {
		c.Identity = domain.Identity{
			FullName:   "john_doe",
			Email:      "john@xyz.com",
			RollNumber: "ABCD123",
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Generator.MaxCount == 0 {
		c.Generator.MaxCount = 50
	}
	if c.Health.CheckInterval == 0 {
		c.Health.CheckInterval = 10 * time.Second
	}
}

// Validate checks values that defaults cannot repair.
func (c *AppConfig) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("%w: server.grpc_port %d out of range", ErrInvalidConfig, c.Server.GRPCPort)
	}
	if c.Server.GRPCPort != 0 && c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("%w: server.grpc_port must differ from server.port", ErrInvalidConfig)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("%w: server.rate_limit must not be negative", ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.max_body_bytes must not be negative", ErrInvalidConfig)
	}
	if c.Generator.MaxCount < 0 {
		return fmt.Errorf("%w: generator.max_count must not be negative", ErrInvalidConfig)
	}
	if c.Identity.FullName == "" {
		return fmt.Errorf("%w: identity.full_name is required", ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
