package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "charity_events", cfg.DB.Name)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, []string{"http://localhost:4200", "http://localhost:4201"}, cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "charity_staging")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("CORS_ORIGIN", "https://events.example.org, https://admin.example.org")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "charity_staging", cfg.DB.Name)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, []string{"https://events.example.org", "https://admin.example.org"}, cfg.CORSOrigins)
}

func TestDSN(t *testing.T) {
	cfg := DBConfig{
		Host: "localhost", Port: 5432, User: "postgres",
		Password: "secret", Name: "charity_events", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=charity_events sslmode=disable",
		cfg.DSN())
}
