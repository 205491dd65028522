package config

import (
	"time"

	"github.com/IanTeda/personal-ledger/engine/infra/store"
	"github.com/IanTeda/personal-ledger/pkg/logger"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Runtime  RuntimeConfig  `koanf:"runtime"  validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection and pool settings.
type DatabaseConfig struct {
	ConnString        string        `koanf:"conn_string"`
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	User              string        `koanf:"user"`
	Password          string        `koanf:"password"`
	DBName            string        `koanf:"name"`
	SSLMode           string        `koanf:"ssl_mode"`
	MaxConns          int           `koanf:"max_conns"           validate:"gte=0"`
	MinConns          int           `koanf:"min_conns"           validate:"gte=0"`
	ConnectTimeout    time.Duration `koanf:"connect_timeout"`
	PingTimeout       time.Duration `koanf:"ping_timeout"`
	HealthCheckPeriod time.Duration `koanf:"health_check_period"`
	ConnMaxLifetime   time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime   time.Duration `koanf:"conn_max_idle_time"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	Environment string `koanf:"environment" validate:"oneof=development staging production"`
	LogLevel    string `koanf:"log_level"   validate:"oneof=debug info warn error"`
	LogJSON     bool   `koanf:"log_json"`
}

// Default returns the built-in configuration, overridable by environment.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:              "localhost",
			Port:              "5432",
			User:              "postgres",
			DBName:            "personal_ledger",
			SSLMode:           "disable",
			MaxConns:          20,
			MinConns:          2,
			ConnectTimeout:    5 * time.Second,
			PingTimeout:       3 * time.Second,
			HealthCheckPeriod: 30 * time.Second,
		},
		Runtime: RuntimeConfig{
			Environment: "development",
			LogLevel:    "info",
		},
	}
}

// StoreConfig projects the database section onto the store driver's config.
func (c *Config) StoreConfig() *store.Config {
	return &store.Config{
		ConnString:        c.Database.ConnString,
		Host:              c.Database.Host,
		Port:              c.Database.Port,
		User:              c.Database.User,
		Password:          c.Database.Password,
		DBName:            c.Database.DBName,
		SSLMode:           c.Database.SSLMode,
		MaxConns:          c.Database.MaxConns,
		MinConns:          c.Database.MinConns,
		ConnectTimeout:    c.Database.ConnectTimeout,
		PingTimeout:       c.Database.PingTimeout,
		HealthCheckPeriod: c.Database.HealthCheckPeriod,
		ConnMaxLifetime:   c.Database.ConnMaxLifetime,
		ConnMaxIdleTime:   c.Database.ConnMaxIdleTime,
	}
}

// LoggerConfig projects the runtime section onto the logger's config.
func (c *Config) LoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(c.Runtime.LogLevel)
	cfg.JSON = c.Runtime.LogJSON
	return cfg
}
