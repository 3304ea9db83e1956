package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/tokengate/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-p int       HTTP port
//	-e string    environment name
//	-s string    JWT HMAC secret key
//	-b int       bcrypt cost
//	-t duration  token validity, e.g. "1h"; negative values need the "-t=-1h" form
//	-l string    log backend (slog, logrus)
//
// os.Args is filtered first with flagx.FilterArgs so flags owned by other
// components (the test runner, -c) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-e", "-s", "-b", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.Port, "p", config.Port, "HTTP port")
	fs.StringVar(&config.Env, "e", config.Env, "environment name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.DurationVar(&config.TokenValidity, "t", config.TokenValidity, "token validity")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog, logrus)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
