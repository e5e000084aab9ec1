package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	Environment  string
	JWTSecret    string
	JWTExpiry    int64
	GeminiAPIKey string
	// Simulated round-trip of the external booking/payment API.
	BookingConfirmDelay time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:           getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		BookingConfirmDelay: time.Duration(getEnvAsInt64("BOOKING_CONFIRM_DELAY_MS", 2000)) * time.Millisecond,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
