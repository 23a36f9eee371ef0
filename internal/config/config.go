package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is unset in production.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set when ENV=production")

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Password hashing
	BcryptCost int
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
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fintrack"),
		DBPassword: getEnv("DB_PASSWORD", "fintrack"),
		DBName:     getEnv("DB_NAME", "fintrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT. The signing secret is externalized so tokens survive restarts.
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	// The dev fallback never signs production tokens.
	if config.JWTSecret == "" {
		if os.Getenv("ENV") == "production" {
			return nil, ErrMissingJWTSecret
		}
		log.Println("Warning: JWT_SECRET not set, using insecure development secret")
		config.JWTSecret = "fallback-secret-key-for-dev-only"
	}

	// Token lifetime defaults to 10 days.
	expStr := getEnv("JWT_EXPIRES_IN", "240h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 240h\n", expStr)
		expDur = 240 * time.Hour
	}
	config.JWTExpirationDur = expDur

	costStr := getEnv("BCRYPT_COST", "10")
	cost, err := strconv.Atoi(costStr)
	if err != nil || cost < 4 || cost > 31 {
		log.Printf("Warning: invalid BCRYPT_COST value '%s', falling back to 10\n", costStr)
		cost = 10
	}
	config.BcryptCost = cost

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

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
