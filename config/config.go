// Package config provides application configuration loaded from the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	AWSRegion       string
	StreamAPIKey    string
	StreamAPISecret string
	AIServerURL     string
	AuthBaseURL     string
	AvatarBucketURL string
	S3Bucket        string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		StreamAPIKey:    os.Getenv("STREAM_API_KEY"),
		StreamAPISecret: os.Getenv("STREAM_API_SECRET"),
		AIServerURL:     os.Getenv("AI_SERVER_URL"),
		AuthBaseURL:     os.Getenv("AUTH_BASE_URL"),
		AvatarBucketURL: os.Getenv("AVATAR_BUCKET_URL"),
		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.StreamAPIKey == "" || c.StreamAPISecret == "" {
		return fmt.Errorf("STREAM_API_KEY and STREAM_API_SECRET are required")
	}
	if c.AIServerURL == "" {
		return fmt.Errorf("AI_SERVER_URL is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
