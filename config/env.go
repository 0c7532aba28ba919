package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	OrderAPIURL    string
	RequestTimeout time.Duration
	SessionSecret  string
	SessionExpiry  time.Duration
	SessionCookie  string
	DraftTTL       time.Duration
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	MigrationDir   string
	RedisURL       string
	RedisAddr      string
	RedisPassword  string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Order API: %s", AppConfig.OrderAPIURL)
}

// FromEnv builds a Config from the process environment without touching .env.
func FromEnv() *Config {
	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "3000")),
		OrderAPIURL:    getEnv("OHIO_ORDER_API_URL", "http://localhost:8080"),
		RequestTimeout: getDuration("OHIO_ORDER_TIMEOUT", 10*time.Second),
		SessionSecret:  getEnv("SESSION_SECRET", "secret"),
		SessionExpiry:  getDuration("SESSION_EXPIRY", 12*time.Hour),
		SessionCookie:  getEnv("SESSION_COOKIE", "session_id"),
		DraftTTL:       getDuration("DRAFT_TTL", 6*time.Hour),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "ohio_order"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		MigrationDir:   getEnv("MIGRATION_DIR", "database/migration"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
