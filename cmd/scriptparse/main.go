/*
File    : barescript/cmd/scriptparse/main.go

scriptparse is a small host application layered entirely outside the
parser/exprparser/perror core. It never evaluates a parsed Script — only
parses it, renders it, or compares two renderings.

Adapted from go-mix's cmd-style root main.go + repl wiring, restructured
around a spf13/cobra command tree (parse / check / diff / repl) instead of
a single flag-driven entrypoint, since this module has several independent
host operations rather than one "run a file" mode.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

// run executes the command tree once and returns a process exit code. Split
// out from main so the testscript harness (main_test.go) can register it as
// a fake "scriptparse" subprocess command without forking the real binary.
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scriptparse",
		Short: "Parse and inspect barescript source without executing it",
	}
	cmd.PersistentFlags().Bool("debug", false, "dump the parsed Script with go-spew instead of YAML")
	cmd.PersistentFlags().Bool("no-color", false, "disable colorized error output")
	cmd.PersistentFlags().String("config", "", "path to a scriptparse config file (default ~/.scriptparse.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level for the host application (trace|debug|info|warn|error)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = FlagsConfig(cmd.Flags(), cfg)
		if cfg.NoColor {
			if err := cmd.Flags().Set("no-color", "true"); err != nil {
				return err
			}
		}

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		appLogger = newLogger(level)
		appLogger.Debug("starting", "command", cmd.Name(), "noColor", cfg.NoColor)
		return nil
	}

	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newReplCmd())
	return cmd
}
