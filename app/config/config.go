package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the console's environment configuration. All values have
// development defaults so the binary runs against a local backend out of
// the box.
type Config struct {
	BackendURL      string
	Port            string
	JWTSecret       string
	AdminEmail      string
	AdminPassword   string
	RefreshInterval time.Duration
	Debug           bool
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:5000/api"),
		Port:            getEnv("PORT", "3000"),
		JWTSecret:       getEnv("JWT_SECRET", "college-admin-secret-key"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@college.test"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 5*time.Minute),
		Debug:           getEnvBool("DEBUG", false),
	}
}

// Debugf logs a formatted message only when DEBUG is enabled.
func (c *Config) Debugf(format string, v ...interface{}) {
	if c.Debug {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
