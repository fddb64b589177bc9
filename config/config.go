package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	CloudinaryURL string
}

// LoadEnvVariables loads a .env file when one is present. Missing files are
// fine in production where the environment is set by the platform.
func LoadEnvVariables() {
	_ = godotenv.Load()
}

func Load() *Config {
	LoadEnvVariables()

	return &Config{
		Port:          getEnv("PORT", "3001"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "blitzgramm"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
