package store

import (
	"fmt"
	"time"

	"github.com/IanTeda/personal-ledger/engine/core"
)

// Config holds PostgreSQL connection settings. The pool is configured once at
// process start; repositories reference the resulting DB, they never own it.
type Config struct {
	ConnString string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string

	MaxConns          int
	MinConns          int
	ConnectTimeout    time.Duration
	PingTimeout       time.Duration
	HealthCheckPeriod time.Duration
	ConnMaxLifetime   time.Duration
	ConnMaxIdleTime   time.Duration
}

// DSN returns the connection string, assembling one from discrete fields when
// ConnString is not set.
func (c *Config) DSN() string {
	if c.ConnString != "" {
		return c.ConnString
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		valueOrDefault(c.Host, "localhost"),
		valueOrDefault(c.Port, "5432"),
		valueOrDefault(c.User, "postgres"),
		c.Password,
		valueOrDefault(c.DBName, "postgres"),
		valueOrDefault(c.SSLMode, "disable"),
	)
}

// Validate rejects malformed connection settings before any dial is attempted.
func (c *Config) Validate() error {
	if c.ConnString != "" {
		return nil
	}
	if c.Host == "" && c.DBName == "" && c.User == "" {
		return core.NewError(
			fmt.Errorf("either conn_string or host/user/name must be set"),
			"INVALID_STORE_CONFIG",
			nil,
		)
	}
	if c.MaxConns < 0 || c.MinConns < 0 {
		return core.NewError(
			fmt.Errorf("pool bounds must be non-negative"),
			"INVALID_STORE_CONFIG",
			map[string]any{"max_conns": c.MaxConns, "min_conns": c.MinConns},
		)
	}
	return nil
}

func valueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
