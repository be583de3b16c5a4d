// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	Environment  string
	DatabasePath string
	JWTSecretKey string
	// FrontendURLs lists the origins allowed by CORS and by the websocket
	// upgrade check.
	FrontendURLs []string
	// Cloudinary unsigned-upload settings for the external media store.
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	MediaUploadTimeoutSecs int
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:             getEnv("SERVER_PORT", "5001"),
		Environment:            env,
		DatabasePath:           getEnv("DATABASE_PATH", "chat.db"),
		JWTSecretKey:           getEnv("JWT_SECRET_KEY", ""),
		FrontendURLs:           splitAndTrim(getEnv("FRONTEND_URLS", "http://localhost:5173,http://localhost:5174")),
		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
		MediaUploadTimeoutSecs: getEnvAsInt("MEDIA_UPLOAD_TIMEOUT_SECS", 30),
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.CloudinaryCloudName == "" {
			missing = append(missing, "CLOUDINARY_CLOUD_NAME")
		}
		if cfg.CloudinaryUploadPreset == "" {
			missing = append(missing, "CLOUDINARY_UPLOAD_PRESET")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
