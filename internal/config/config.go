package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	AppPort    string
	AppEnv     string
	LogLevel   string
	JWTSecret  string

	// Local key-value store holding cart and auth state.
	LocalStorePath string

	// Product image storage.
	BlobDir     string
	BlobBaseURL string

	AdminUsername string
	AdminPassword string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		AppPort:        getEnv("APP_PORT", "8080"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		AppEnv:         os.Getenv("APP_ENV"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", "./ayushyaa.db"),
		BlobDir:        getEnv("BLOB_DIR", "./uploads"),
		BlobBaseURL:    getEnv("BLOB_BASE_URL", "/uploads"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
