package config

import (
	"fmt"
	"strconv"
	"time"
)

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// parseEnv overlays the environment onto config:
//
//	PORT            listen port
//	APP_ENV         environment name
//	JWT_SECRET      HMAC secret
//	BCRYPT_COST     bcrypt cost
//	TOKEN_VALIDITY  Go duration, e.g. "1h"
//	LOG_BACKEND     slog | logrus
//
// Unparsable numbers and durations panic, like a broken JSON file does.
func parseEnv(config *Config, lookup lookupFunc) {
	if v, ok := lookup("PORT"); ok {
		config.Port = mustAtoi("PORT", v)
	}
	if v, ok := lookup("APP_ENV"); ok {
		config.Env = v
	}
	if v, ok := lookup("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := lookup("BCRYPT_COST"); ok {
		config.BcryptCost = mustAtoi("BCRYPT_COST", v)
	}
	if v, ok := lookup("TOKEN_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("TOKEN_VALIDITY: %w", err))
		}
		config.TokenValidity = d
	}
	if v, ok := lookup("LOG_BACKEND"); ok {
		config.LogBackend = v
	}
}

func mustAtoi(name, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", name, err))
	}
	return n
}
