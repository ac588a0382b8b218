package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const devJWTSecret = "foodapp_dev_secret_change_me"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DB          Database
	JWT         JWT

	SeedOnStart bool `env:"SEED_ON_START" envDefault:"true"`
}

type Environment struct {
	Name    string `env:"ENVIRONMENT" envDefault:"development"`
	GinMode string `env:"GIN_MODE"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Address is the host:port the HTTP server listens on
func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}

type Database struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	Source string `env:"DB_SOURCE" envDefault:"foodapp.db"`
}

type JWT struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"168h"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment.Name == "development"
}

// Load reads .env when present and then parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds the config from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.DB.Driver, DriverSQLite, DriverPostgres)
	}
	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.JWT.Secret = devJWTSecret
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	return nil
}
