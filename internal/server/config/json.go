package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/soplanita/giftgenie/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
// Durations are given in minutes to keep the file format flag-compatible.
type JsonConfig struct {
	EndpointAddr               string `json:"endpoint_addr"`
	MetricsAddr                string `json:"metrics_addr"`
	MongoURI                   string `json:"mongo_uri"`
	MongoDatabase              string `json:"mongo_database"`
	SecretKey                  string `json:"secret_key"`
	AccessTokenValidityMinutes int    `json:"access_token_validity_minutes"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. Missing file path means no overlay. A file that
// cannot be read or parsed panics: a broken explicit config is a startup
// error, not something to limp past.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.MetricsAddr != "" {
		config.MetricsAddr = c.MetricsAddr
	}
	if c.MongoURI != "" {
		config.MongoURI = c.MongoURI
	}
	if c.MongoDatabase != "" {
		config.MongoDatabase = c.MongoDatabase
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityMinutes > 0 {
		config.AccessTokenValidity = time.Duration(c.AccessTokenValidityMinutes) * time.Minute
	}
}
