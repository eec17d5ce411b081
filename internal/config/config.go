package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"db_host" validate:"required"`
	PostgresPort     string `koanf:"db_port" validate:"required,numeric"`
	PostgresDB       string `koanf:"db_database" validate:"required"`
	PostgresUsername string `koanf:"db_user" validate:"required"`
	PostgresPassword string `koanf:"db_password"`
	APIPort          string `koanf:"api_port" validate:"required,numeric"`
	LogLevel         string `koanf:"log_level" validate:"required,oneof=trace debug info warn warning error"`
}

// envKeys are the only environment variables read into the config.
var envKeys = map[string]struct{}{
	"db_host":     {},
	"db_port":     {},
	"db_database": {},
	"db_user":     {},
	"db_password": {},
	"api_port":    {},
	"log_level":   {},
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	// In all cases the default behavior should be for the docker compose setup
	defaults := map[string]interface{}{
		"db_host":     "localhost",
		"db_port":     "5432",
		"db_database": "postgres",
		"db_user":     "postgres",
		"db_password": "postgres",
		"api_port":    "3000",
		"log_level":   "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Unset and empty variables keep the default.
	err := k.Load(env.ProviderWithValue("", ".", func(key string, value string) (string, interface{}) {
		key = strings.ToLower(key)
		if _, ok := envKeys[key]; !ok || len(value) == 0 {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// PostgresDSN builds the lib/pq connection string for the configured database.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}
