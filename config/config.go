// Package config loads the optional user configuration file that
// supplies defaults for the CLI flags. The file is read-only input; it
// is never created or written by the program.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/MCSeekeri/ferris-fetch/logging"
)

// Config mirrors the flag set: every key can be pre-set from the file
// and overridden on the command line.
type Config struct {
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`
	Minimal bool   `toml:"minimal"`
	NoArt   bool   `toml:"no_art"`
}

// Default is the built-in configuration used when no file exists.
func Default() Config {
	return Config{Theme: "rust"}
}

// Path returns the expected location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "ferris-fetch", "config.toml")
}

// Load reads the configuration file. A missing file yields Default; a
// malformed one is ignored with a warning so a broken config can never
// block the display.
func Load() Config {
	return loadFrom(Path())
}

func loadFrom(path string) Config {
	log := logging.GetLogger("config")
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Str("path", path).Msg("config unreadable")
		}
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring malformed config")
		return Default()
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}
	return cfg
}
