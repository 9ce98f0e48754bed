package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	PORT              listen port (number) or full bind address
//	MONGODB_URI       MongoDB connection string
//	MONGODB_DATABASE  MongoDB database name
//	JWT_SECRET        token-signing secret
//	TOKEN_TTL         access token validity, minutes
//
// An optional .env file is loaded by the entry point before this runs
// (godotenv), so dotenv values arrive here through the process environment.
func parseEnv(config *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if strings.Contains(v, ":") {
			config.Addr = v
		} else {
			config.Addr = ":" + v
		}
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		config.DatabaseURI = v
	}
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		config.DatabaseName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
