package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	FirestoreProject string
	StorageBucket    string
	JWTSecret        string
	JWTExpiry        int64
	MapboxToken      string
	IdentityAPIURL   string
	IdentityAPIKey   string
	CompanyAPIURL    string
	CompanyAPIKey    string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", "trueestate-exports"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:        getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		MapboxToken:      getEnv("MAPBOX_TOKEN", ""),
		IdentityAPIURL:   getEnv("IDENTITY_API_URL", ""),
		IdentityAPIKey:   getEnv("IDENTITY_API_KEY", ""),
		CompanyAPIURL:    getEnv("COMPANY_API_URL", ""),
		CompanyAPIKey:    getEnv("COMPANY_API_KEY", ""),
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
