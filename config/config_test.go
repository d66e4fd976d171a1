package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, "5432", cfg.PGPort)
	assert.Equal(t, "informatica1", cfg.PGUser)
	assert.Equal(t, "fp_info1_2025_2", cfg.PGDatabase)
	assert.Equal(t, "postgres", cfg.PGSuperuser)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "data_seed", cfg.SeedDir)
	assert.Equal(t, "reportes", cfg.ReportDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PG_HOST", "db.example.com")
	t.Setenv("PG_DATABASE", "salud_test")
	t.Setenv("DATA_DIR", "/var/lib/healthlog")

	cfg := LoadConfig()

	assert.Equal(t, "db.example.com", cfg.PGHost)
	assert.Equal(t, "salud_test", cfg.PGDatabase)
	assert.Equal(t, "/var/lib/healthlog", cfg.DataDir)
}

func TestCredentialFile(t *testing.T) {
	cfg := &Config{DataDir: "data"}
	assert.Equal(t, filepath.Join("data", "passwords.csv"), cfg.CredentialFile())
}
