package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tokengate/internal/flagx"
	"github.com/dmitrijs2005/tokengate/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig mirrors Config for config files. Files ending in .yaml or .yml
// are read as YAML, anything else as JSON. Pointer fields tell "absent"
// apart from a zero value, so a partial file only overrides what it names.
// TokenValidity accepts strings such as "1h" or "-30m".
type JsonConfig struct {
	Port          *int            `json:"port" yaml:"port"`
	Env           *string         `json:"env" yaml:"env"`
	SecretKey     *string         `json:"secret_key" yaml:"secret_key"`
	BcryptCost    *int            `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	TokenValidity *timex.Duration `json:"token_validity" yaml:"token_validity"`
	LogBackend    *string         `json:"log_backend" yaml:"log_backend"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// A file that cannot be read or parsed panics: a broken config should stop
// the process at startup.
func parseJson(config *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := unmarshalConfig(path, file, c); err != nil {
		panic(err)
	}

	if c.Port != nil {
		config.Port = *c.Port
	}
	if c.Env != nil {
		config.Env = *c.Env
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.TokenValidity != nil {
		config.TokenValidity = c.TokenValidity.Duration
	}
	if c.LogBackend != nil {
		config.LogBackend = *c.LogBackend
	}
}

func unmarshalConfig(path string, data []byte, c *JsonConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}
