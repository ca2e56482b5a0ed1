// Package config loads service configuration from environment variables,
// with defaults matching the local development setup.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DBConfig holds the Postgres connection settings and pool limits.
type DBConfig struct {
	Host            string        `mapstructure:"db_host"`
	Port            int           `mapstructure:"db_port"`
	User            string        `mapstructure:"db_user"`
	Password        string        `mapstructure:"db_password"`
	Name            string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"db_ssl_mode"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
}

// Config holds all configuration options for the API server.
type Config struct {
	Port        int      `mapstructure:"port"`
	CORSOrigins []string // parsed from CORS_ORIGIN, comma separated
	DB          DBConfig `mapstructure:",squash"`
}

// Load reads configuration from the environment. Every key has a default, so
// the server boots with no environment at all against a local Postgres.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 3000)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "charity_events")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", 5*time.Minute)
	v.SetDefault("cors_origin", "http://localhost:4200,http://localhost:4201")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for _, origin := range strings.Split(v.GetString("cors_origin"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN returns the Postgres connection string.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
