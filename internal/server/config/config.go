// Package config handles configuration for the tokengate server,
// including defaults, a JSON or YAML file, environment variables and flags.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the tokengate server.
//
// Fields:
//   - Port: TCP port for the HTTP listener.
//   - Env: environment name; "test" switches request logging off.
//   - SecretKey: HMAC secret for signing JWTs (HS256). The default is public; override it.
//   - BcryptCost: bcrypt work factor for password hashes. The default is low on purpose.
//   - TokenValidity: added to "now" to compute a token's exp claim.
//   - LogBackend: "slog" or "logrus".
type Config struct {
	Port          int
	Env           string
	SecretKey     string
	BcryptCost    int
	TokenValidity time.Duration
	LogBackend    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey and BcryptCost are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Port = 9000
	c.Env = "development"
	c.SecretKey = "jwt_secret"
	c.BcryptCost = 5
	c.TokenValidity = 1 * time.Hour
	c.LogBackend = "slog"
}

// Address is the listen address derived from Port.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg, os.LookupEnv)
	parseFlags(cfg)
	return cfg
}
