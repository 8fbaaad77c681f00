package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	DatabaseURL   string
	AuthToken     string
	SecretKey     string
	Environment   string
	Port          string
	DefaultAuthor string
	Pool          PoolConfig
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads the configuration from environment variables. Call
// godotenv.Load beforehand if a .env file should be honoured.
func Load() (*Config, error) {
	lifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return nil, err
	}

	pool := PoolConfig{
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: lifetime,
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AuthToken:     os.Getenv("AUTH_TOKEN"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		Environment:   getEnv("APP_ENV", EnvProduction),
		Port:          getEnv("PORT", "8080"),
		DefaultAuthor: getEnv("DEFAULT_AUTHOR", "Me"),
		Pool:          pool,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	// An empty token would make "Bearer " a valid credential.
	if c.AuthToken == "" {
		return errors.New("AUTH_TOKEN must be set")
	}
	return nil
}

// IsDevelopment reports whether verbose error output is enabled.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
