package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	StoreDriver string
	SQLitePath  string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// DynamoDB
	DynamoTable    string
	AWSRegion      string
	DynamoEndpoint string

	// Reporting
	ReportLocation *time.Location
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Storage
		StoreDriver: getEnv("STORE_DRIVER", DriverSQLite),
		SQLitePath:  getEnv("SQLITE_PATH", "personalfinance.db"),

		// Postgres
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "personalfinance"),
		DBPassword: getEnv("DB_PASSWORD", "personalfinance"),
		DBName:     getEnv("DB_NAME", "personalfinance"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// DynamoDB
		DynamoTable:    getEnv("DYNAMODB_TABLE", "personalfinance"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		DynamoEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
	}

	switch config.StoreDriver {
	case DriverSQLite, DriverPostgres, DriverDynamoDB, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", config.StoreDriver)
	}

	tz := getEnv("REPORT_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: invalid REPORT_TIMEZONE value '%s', falling back to UTC\n", tz)
		loc = time.UTC
	}
	config.ReportLocation = loc

	return config, nil
}

// PostgresURL returns the URL form of the Postgres connection settings, as
// used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// PostgresDSN returns the keyword/value form of the Postgres connection settings.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
