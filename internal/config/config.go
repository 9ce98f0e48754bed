// Package config handles configuration for the server,
// including defaults, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the staffgraph server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseURI: MongoDB connection string.
//   - DatabaseName: MongoDB database holding the users and employees collections.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: access token lifetime.
type Config struct {
	Addr                  string
	DatabaseURI           string
	DatabaseName          string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":4000"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "staffgraph"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 1 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
