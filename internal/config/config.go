// Package config loads server settings from a JSON file merged with
// command-line flags, mirroring pyccs.util.Configuration's
// defaults-then-file-then-override layering but built on viper, the
// config library the rest of this corpus reaches for.
package config

import (
	"errors"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Settings is every flag/file value the server needs at startup (spec §6
// "CLI surface").
type Settings struct {
	Name        string `mapstructure:"name"`
	MOTD        string `mapstructure:"motd"`
	Level       string `mapstructure:"level"`
	Port        int    `mapstructure:"port"`
	MaxPlayers  int    `mapstructure:"players"`
	VerifyNames bool   `mapstructure:"verify_names"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Defaults mirrors the original's Configuration defaults dict.
func Defaults() Settings {
	return Settings{
		Name:        "ccserver",
		MOTD:        "github.com/jshtab/pyccs",
		Level:       "level.cw",
		Port:        25565,
		MaxPlayers:  9,
		VerifyNames: false,
		Verbose:     false,
	}
}

// Load reads path (if it exists) into v on top of the registered
// defaults, then unmarshals the result into Settings. Per spec §6,
// missing or invalid config files are a warning, not a fatal error — the
// server just runs on defaults/flags alone. A config file named
// explicitly via SetConfigFile (rather than viper's search-path lookup)
// surfaces a missing file as a plain *fs.PathError, not
// viper.ConfigFileNotFoundError, so both are treated as "missing".
func Load(v *viper.Viper, path string, logger zerolog.Logger) (Settings, error) {
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			logger.Warn().Str("path", path).Msg("config file not found, using defaults")
		default:
			logger.Warn().Err(err).Str("path", path).Msg("failed to read config file, using defaults")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to parse config file, using defaults")
		return Defaults(), nil
	}
	return s, nil
}
