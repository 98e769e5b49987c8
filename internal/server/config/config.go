// Package config handles configuration for the wishlist server, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the giftgenie server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - MetricsAddr: bind address for the Prometheus /metrics endpoint.
//   - MongoURI / MongoDatabase: document store connection settings.
//   - SecretKey: HMAC secret used to verify access tokens (HS256). The same
//     key is configured on the auth server that mints the tokens.
//   - AccessTokenValidity: lifetime for tokens minted by test helpers.
type Config struct {
	EndpointAddr        string
	MetricsAddr         string
	MongoURI            string
	MongoDatabase       string
	SecretKey           string
	AccessTokenValidity time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.MetricsAddr = ":9100"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "giftgenie"
	c.SecretKey = "secretKey"
	c.AccessTokenValidity = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
