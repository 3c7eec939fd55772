/*
File    : barescript/cmd/scriptparse/log.go

Structured logging for the CLI layer only — package parser and package
exprparser stay logger-free (no ambient state, no I/O), so every log call
in this module lives here in the host application.
*/
package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// appLogger is set once in the root command's PersistentPreRunE and read by
// the parse and check subcommands; it defaults to a discarding logger so tests and ad-hoc
// calls to the subcommand constructors never hit a nil receiver.
var appLogger hclog.Logger = hclog.NewNullLogger()

func newLogger(level string) hclog.Logger {
	if level == "" {
		level = "warn"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "scriptparse",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}
