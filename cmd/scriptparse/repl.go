/*
File    : barescript/cmd/scriptparse/repl.go

`scriptparse repl` starts the interactive read-parse-print loop (package
repl): chzyer/readline for line editing and history, fatih/color for output.
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/barescript-go/barescript/repl"
)

const banner = `
 _                                   _       _
| |__   __ _ _ __ ___  ___  ___ _ __(_)_ __ | |_
| '_ \ / _\ | '__/ _ \/ __|/ __| '__| | '_ \| __|
| |_) | (_| | | |  __/\__ \ (__| |  | | |_) | |_
|_.__/ \__,_|_|  \___||___/\___|_|  |_| .__/ \__|
                                       |_|
`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive parser REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := repl.NewRepl(banner, "0.1.0", "barescript", "----------------------------------------", "MIT", "bs >>> ")
			session.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}
