/*
File    : barescript/cmd/scriptparse/check.go

`scriptparse check <file>` parses a script for its side effects only: a
clean exit and "OK" on success, a colorized caret-rendered Parser Error and
a non-zero exit on failure. Never prints the parsed Script itself — for
that, use `parse`.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barescript-go/barescript/parser"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a script file and report success or a parse error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if _, err := parser.ParseScriptString(string(text)); err != nil {
				appLogger.Debug("check failed", "path", args[0], "error", err)
				printParseError(os.Stderr, err, noColor)
				os.Exit(1)
			}
			appLogger.Debug("check succeeded", "path", args[0])
			fmt.Println("OK")
			return nil
		},
	}
}
