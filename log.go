// log.go holds the process-wide structured logger. Logs go to stderr so
// stdout stays clean for the REPL and the MCP stdio transport.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// setupLogging applies the verbosity chosen on the command line.
func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
}
