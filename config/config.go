package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Listing sources.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Env      string
	LogLevel string

	DatasetPath    string
	ListingSource  string
	SQLitePath     string
	ResultsCSVPath string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	MaxRetries       int

	Neighbors int

	HTTPAddr        string
	ReadTimeoutSec  int
	WriteTimeoutSec int
	ShutdownSec     int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		DatasetPath:    getEnv("DATASET_PATH", "./student_Accommodation_dataset.csv"),
		ListingSource:  getEnv("LISTING_SOURCE", SourceCSV),
		SQLitePath:     getEnv("SQLITE_PATH", "./data/listings.db"),
		ResultsCSVPath: getEnv("RESULTS_CSV_PATH", ""),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "recommender"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "recommender"),
		PostgresDB:       getEnv("POSTGRES_DB", "accommodation_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),

		Neighbors: getEnvInt("NEIGHBORS", 5),

		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ReadTimeoutSec:  getEnvInt("HTTP_READ_TIMEOUT_SEC", 10),
		WriteTimeoutSec: getEnvInt("HTTP_WRITE_TIMEOUT_SEC", 10),
		ShutdownSec:     getEnvInt("HTTP_SHUTDOWN_TIMEOUT_SEC", 10),
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("ENV must be local, dev or prod, got %q", c.Env)
	}
	switch c.ListingSource {
	case SourceCSV, SourcePostgres, SourceSQLite:
	default:
		return fmt.Errorf("LISTING_SOURCE must be %s, %s or %s, got %q",
			SourceCSV, SourcePostgres, SourceSQLite, c.ListingSource)
	}
	if c.Neighbors <= 0 {
		return fmt.Errorf("NEIGHBORS must be at least 1, got %d", c.Neighbors)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// ReadTimeout returns the HTTP server read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
