package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces every environment override for this application.
const envPrefix = "LEDGER_"

// envToPath maps environment variable names to koanf paths. Only variables
// listed here are honored; anything else under the prefix is ignored.
var envToPath = map[string]string{
	"LEDGER_DATABASE_CONN_STRING":         "database.conn_string",
	"LEDGER_DATABASE_HOST":                "database.host",
	"LEDGER_DATABASE_PORT":                "database.port",
	"LEDGER_DATABASE_USER":                "database.user",
	"LEDGER_DATABASE_PASSWORD":            "database.password",
	"LEDGER_DATABASE_NAME":                "database.name",
	"LEDGER_DATABASE_SSL_MODE":            "database.ssl_mode",
	"LEDGER_DATABASE_MAX_CONNS":           "database.max_conns",
	"LEDGER_DATABASE_MIN_CONNS":           "database.min_conns",
	"LEDGER_DATABASE_CONNECT_TIMEOUT":     "database.connect_timeout",
	"LEDGER_DATABASE_PING_TIMEOUT":        "database.ping_timeout",
	"LEDGER_DATABASE_HEALTH_CHECK_PERIOD": "database.health_check_period",
	"LEDGER_DATABASE_CONN_MAX_LIFETIME":   "database.conn_max_lifetime",
	"LEDGER_DATABASE_CONN_MAX_IDLE_TIME":  "database.conn_max_idle_time",
	"LEDGER_RUNTIME_ENVIRONMENT":          "runtime.environment",
	"LEDGER_RUNTIME_LOG_LEVEL":            "runtime.log_level",
	"LEDGER_RUNTIME_LOG_JSON":             "runtime.log_json",
}

// Load builds the configuration from built-in defaults overlaid with
// LEDGER_-prefixed environment variables, then validates the result.
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	// Use the structs provider to convert the default config to a map,
	// avoiding hardcoded key-value pairs.
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			if configPath, exists := envToPath[key]; exists {
				return configPath, value
			}
			// Unknown variables under the prefix are dropped.
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading config environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
