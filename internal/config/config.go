package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port          string
	JWTSecret     string
	TokenExpiry   time.Duration
	StorageDriver string // "file" or "mongo"
	DataDir       string
	MongoURI      string
	MongoDatabase string
	AllowedOrigin string
}

// LoadConfig reads .env if present and builds the configuration from
// environment variables with sensible defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables")
	}

	expiry := 24 * time.Hour
	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logrus.WithError(err).Warnf("Invalid TOKEN_EXPIRY %q, using default", raw)
		} else {
			expiry = parsed
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenExpiry:   expiry,
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "volunteerbazaar"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
