package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// Blank out anything the surrounding environment might inject.
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"JWT_SECRET", "JWT_EXPIRY", "PORT", "CORS_ORIGINS", "SEED_ON_START",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "denonce_db", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("PORT", "8080")
	t.Setenv("SEED_ON_START", "true")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoad_InvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "pas-une-durée")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "denonce_db",
		DBSSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=denonce_db")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
