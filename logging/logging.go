// Package logging configures the process-wide zerolog logger. All log
// output goes to stderr so stdout stays clean for the fetch display.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger at a level derived from the
// verbosity count: 0 warn, 1 info, 2 debug, 3 and above trace.
func Setup(verbosity int) {
	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// GetLogger returns a logger tagged with the originating component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
