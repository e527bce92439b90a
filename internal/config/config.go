// Package config loads the steward CLI configuration from the environment.
package config

import (
	"io/fs"

	"github.com/jmgilman/go/steward/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. STEWARD_ROOT.
const Prefix = "STEWARD"

// Config holds the CLI configuration.
type Config struct {
	// Root is the directory the steward is bound to. Empty means the
	// current working directory.
	Root string `envconfig:"ROOT"`

	// LogLevel is a zerolog level name.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Stream makes copy and move pipe file bytes by default.
	Stream bool `envconfig:"STREAM" default:"false"`
}

// Load reads the configuration from the environment. Variables from the
// given env files are loaded first without overriding variables that are
// already set; with no files, a .env file in the working directory is used
// when present. A missing default .env is not an error, a malformed one is.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.CodeInvalidArgument, "failed to load .env")
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		code := errors.CodeInvalidArgument
		if errors.Is(err, fs.ErrNotExist) {
			code = errors.CodeNotFound
		}
		return nil, errors.WithContext(
			errors.Wrap(err, code, "failed to load env file"),
			"files", envFiles,
		)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidArgument, "failed to load config")
	}
	return &cfg, nil
}
