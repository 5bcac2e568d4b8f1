package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_ENABLED", "DB_NAME", "MATCH_CONCURRENCY", "MATCH_MAX_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 1<<20, cfg.Server.BodyLimit)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "soundvibe", cfg.Database.DBName)
	assert.Equal(t, 4, cfg.Match.Concurrency)
	assert.Equal(t, 10, cfg.Match.DefaultLimit)
	assert.Equal(t, 50, cfg.Match.MaxLimit)
	assert.Equal(t, 500, cfg.Match.CandidatePool)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_ENABLED", "false")
	t.Setenv("MATCH_CONCURRENCY", "16")
	t.Setenv("MATCH_MAX_LIMIT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 16, cfg.Match.Concurrency)
	assert.Equal(t, 50, cfg.Match.MaxLimit)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     "6543",
		User:     "svc",
		Password: "secret",
		DBName:   "soundvibe",
	}}

	assert.Equal(t,
		"host=db port=6543 user=svc password=secret dbname=soundvibe sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}
