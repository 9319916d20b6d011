// Package config loads application configuration from environment variables
// and optional config files via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration is the root configuration for the quoting service.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Guard      GuardConfig      `mapstructure:"guard"`
	Retry      RetryConfig      `mapstructure:"retry"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	// ConnectAttempts bounds the startup connection retry loop.
	ConnectAttempts int `mapstructure:"connect_attempts"`
	AutoMigrate     bool `mapstructure:"auto_migrate"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// GuardConfig controls the guarded mutation layer.
type GuardConfig struct {
	// FailOpenOnStatusError executes the guarded operation when the project
	// status cannot be determined. Deliberate policy choice; the fallback is
	// logged whenever it is taken.
	FailOpenOnStatusError bool `mapstructure:"fail_open_on_status_error"`
	// AckTTL is how long a per-project confirmation acknowledgment is
	// remembered within a session.
	AckTTL time.Duration `mapstructure:"ack_ttl"`
	// ConfirmationTTL is how long a pending confirmation stays actionable.
	ConfirmationTTL time.Duration `mapstructure:"confirmation_ttl"`
}

// RetryConfig bounds persistence retries. The original system had none; a
// bounded backoff with a caller-visible timeout is required here.
type RetryConfig struct {
	MaxAttempts      uint          `mapstructure:"max_attempts"`
	InitialInterval  time.Duration `mapstructure:"initial_interval"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout"`
}

// DSN builds the postgres connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// NewConfig loads configuration from ./config/config.yaml (if present) and
// the environment. Environment variables use the POOLQUOTE_ prefix with
// underscores, e.g. POOLQUOTE_POSTGRES_HOST.
func NewConfig() (*Configuration, error) {
	// Load .env if present; ignore if missing.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POOLQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "api")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "poolquote")
	v.SetDefault("postgres.dbname", "poolquote")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.connect_attempts", 10)
	v.SetDefault("postgres.auto_migrate", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.expiration", 30*time.Minute)
	v.SetDefault("guard.fail_open_on_status_error", true)
	v.SetDefault("guard.ack_ttl", 12*time.Hour)
	v.SetDefault("guard.confirmation_ttl", 15*time.Minute)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.initial_interval", 100*time.Millisecond)
	v.SetDefault("retry.operation_timeout", 10*time.Second)
}

// Validate checks the configuration against struct tags.
func (c *Configuration) Validate() error {
	return validator.New().Struct(c)
}

// GetDefaultConfig returns an in-process default configuration, used by
// tests and scripts that do not load from the environment.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "test"},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: "debug"},
		Cache:      CacheConfig{Enabled: true, Expiration: 30 * time.Minute},
		Guard: GuardConfig{
			FailOpenOnStatusError: true,
			AckTTL:                12 * time.Hour,
			ConfirmationTTL:       15 * time.Minute,
		},
		Retry: RetryConfig{
			MaxAttempts:      3,
			InitialInterval:  100 * time.Millisecond,
			OperationTimeout: 10 * time.Second,
		},
	}
}
