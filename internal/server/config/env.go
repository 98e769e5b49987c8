package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// local .env file first when one exists. Unset variables leave the current
// values untouched.
//
// Variables: ADDRESS, METRICS_ADDRESS, MONGO_URI, MONGO_DATABASE,
// SECRET_KEY, ACCESS_TOKEN_VALIDITY (minutes).
func parseEnv(config *Config) {
	// .env is a development convenience; absence is normal in production
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		config.MetricsAddr = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		config.MongoURI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		config.MongoDatabase = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.AccessTokenValidity = time.Duration(minutes) * time.Minute
		}
	}
}
