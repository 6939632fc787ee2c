package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Credentials. A *PasswordHash (bcrypt) wins over the plain password.
	AdminUsername      string
	AdminPassword      string
	AdminPasswordHash  string
	ViewerUsername     string
	ViewerPassword     string
	ViewerPasswordHash string

	// Sharing
	ViewerURL   string
	ShareTarget string

	// Export
	ExportAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Credentials
		AdminUsername:      getEnv("ADMIN_USERNAME", "Kate"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		ViewerUsername:     getEnv("VIEWER_USERNAME", "church"),
		ViewerPassword:     getEnv("VIEWER_PASSWORD", defaultViewerPassword),
		ViewerPasswordHash: getEnv("VIEWER_PASSWORD_HASH", ""),

		// Sharing
		ViewerURL:   getEnv("VIEWER_URL", "http://localhost:8080/api/v1/viewer/report"),
		ShareTarget: strings.ToLower(getEnv("SHARE_TARGET", "whatsapp")),

		// Export
		ExportAPIKey: getEnv("EXPORT_API_KEY", ""),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

const (
	defaultAdminPassword  = "Admin123"
	defaultViewerPassword = "Viewer123"
)

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDefaultSecret reports whether the JWT secret was left at its
// development fallback.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == "fallback-secret-key-for-dev-only"
}

// UsesDefaultCredentials reports whether either account still logs in
// with its built-in development password. A configured hash counts as
// a deliberate credential.
func (c *Config) UsesDefaultCredentials() bool {
	adminDefault := c.AdminPasswordHash == "" && c.AdminPassword == defaultAdminPassword
	viewerDefault := c.ViewerPasswordHash == "" && c.ViewerPassword == defaultViewerPassword
	return adminDefault || viewerDefault
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
