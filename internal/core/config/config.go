package config

import (
	"time"

	"github.com/vietddude/bfhl/internal/core/domain"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Identity  domain.Identity `yaml:"identity"`
	Logging   LoggingConfig   `yaml:"logging"`
	Generator GeneratorConfig `yaml:"generator"`
	Health    HealthConfig    `yaml:"health"`
}

// ServerConfig holds HTTP and gRPC server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	GRPCPort        int           `yaml:"grpc_port"` // 0 = disabled
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	RateLimit       float64       `yaml:"rate_limit"` // requests per second per client, 0 = unlimited
	RateBurst       int           `yaml:"rate_burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// GeneratorConfig bounds the test-data generator.
type GeneratorConfig struct {
	MaxCount int `yaml:"max_count"`
}

// HealthConfig controls the health monitor.
type HealthConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
}
