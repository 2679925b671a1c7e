package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	SeedAdmin SeedAdminConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type DatabaseConfig struct {
	Path string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// SeedAdminConfig holds the bootstrap administrator credentials. They are
// required environment input on first run; there are no compiled-in defaults.
type SeedAdminConfig struct {
	Username  string
	Password  string
	LastName  string
	FirstName string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Database = DatabaseConfig{
		Path: getEnv("DB_PATH", "timeclock.db"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	config.SeedAdmin = SeedAdminConfig{
		Username:  getEnv("SEED_ADMIN_USERNAME", ""),
		Password:  getEnv("SEED_ADMIN_PASSWORD", ""),
		LastName:  getEnv("SEED_ADMIN_LAST_NAME", "Admin"),
		FirstName: getEnv("SEED_ADMIN_FIRST_NAME", "System"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.SeedAdmin.Username == "" {
		return fmt.Errorf("SEED_ADMIN_USERNAME is required")
	}
	if c.SeedAdmin.Password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
