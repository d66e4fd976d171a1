package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	PGHost      string
	PGPort      string
	PGUser      string
	PGPassword  string
	PGDatabase  string
	PGSuperuser string
	MongoURL    string
	DataDir     string
	SeedDir     string
	ReportDir   string
	LogLevel    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PGHost:      getenv("PG_HOST", "localhost"),
		PGPort:      getenv("PG_PORT", "5432"),
		PGUser:      getenv("PG_USER", "informatica1"),
		PGPassword:  getenv("PG_PASSWORD", "info2025_2"),
		PGDatabase:  getenv("PG_DATABASE", "fp_info1_2025_2"),
		PGSuperuser: getenv("PG_SUPERUSER", "postgres"),
		MongoURL:    getenv("MONGO_URL", "mongodb://localhost:27017"),
		DataDir:     getenv("DATA_DIR", "data"),
		SeedDir:     getenv("SEED_DIR", "data_seed"),
		ReportDir:   getenv("REPORT_DIR", "reportes"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}
	return cfg
}

// CredentialFile is the passwords CSV path; its presence doubles as the
// first-run marker for provisioning.
func (c *Config) CredentialFile() string {
	return filepath.Join(c.DataDir, "passwords.csv")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
