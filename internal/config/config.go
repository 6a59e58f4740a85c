package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Dataset sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	AppEnv  string
	AppPort string

	DatasetSource string
	DatasetPath   string
	SortLocale    string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	CORSAllowedOrigin string
	RateLimitRPS      float64
	RateLimitBurst    int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:  getEnv("APP_ENV", "dev"),
		AppPort: getEnv("APP_PORT", "8080"),

		DatasetSource: getEnv("DATASET_SOURCE", SourceEmbedded),
		DatasetPath:   os.Getenv("DATASET_PATH"),
		SortLocale:    getEnv("SORT_LOCALE", "en"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// Validate reports configuration that cannot produce a dataset.
func (c *Config) Validate() error {
	switch c.DatasetSource {
	case SourceEmbedded:
	case SourceFile:
		if c.DatasetPath == "" {
			return errors.New("DATASET_PATH is required when DATASET_SOURCE=file")
		}
	case SourcePostgres:
		if c.DBHost == "" {
			return errors.New("DB_HOST is required when DATASET_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.DatasetSource)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("rate limit must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
