package database

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverNone     = "none"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver         string
	SQLitePath     string
	MigrationsPath string

	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", DriverNone)))
	if driver == "" {
		driver = DriverNone
	}
	switch driver {
	case DriverNone, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q (use none, sqlite or postgres)", driver)
	}

	return &Config{
		Driver:         driver,
		SQLitePath:     getEnv("SQLITE_PATH", "cfcs.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", "cfcs"),
		Password:       getEnv("DB_PASSWORD", "cfcs"),
		DBName:         getEnv("DB_NAME", "cfcs"),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
	}, nil
}

// Enabled reports whether a storage driver was configured.
func (c *Config) Enabled() bool {
	return c.Driver != DriverNone
}

// DSN returns the connection string for the gorm driver.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the database URL understood by golang-migrate.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.SQLitePath
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
