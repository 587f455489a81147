package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	Port     int
	MongoURI string
	MongoDB  string
	Debug    bool
}

// LoadConfig reads configuration from a .env file (when present) and the
// environment.
func LoadConfig() *Config {
	// a missing .env is fine, env vars still apply
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:     port,
		MongoURI: getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:  getEnv("MONGO_DB", "crm"),
		Debug:    getEnv("GIN_MODE", "debug") == "debug",
	}
}

// getEnv returns the environment value or a default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
