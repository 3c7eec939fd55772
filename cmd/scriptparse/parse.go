/*
File    : barescript/cmd/scriptparse/parse.go

`scriptparse parse <file>` parses a script and prints its canonical document
form. --debug swaps the YAML rendering for a github.com/davecgh/go-spew dump
of the Go value tree (useful when a Script's shape, not its serialized form,
is in question). --list prints a flat, columnized listing of top-level
statement kinds and names via github.com/ryanuber/columnize, handy for a
quick skim of a long script.
*/
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/barescript-go/barescript/ast"
	"github.com/barescript-go/barescript/parser"
)

func newParseCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a script file and print its canonical document form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			noColor, _ := cmd.Flags().GetBool("no-color")

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			appLogger.Debug("read file", "path", args[0], "bytes", len(text))

			script, err := parser.ParseScriptString(string(text))
			if err != nil {
				appLogger.Debug("parse failed", "path", args[0], "error", err)
				printParseError(os.Stderr, err, noColor)
				os.Exit(1)
			}
			appLogger.Debug("parse succeeded", "path", args[0], "statements", len(script.Statements))

			switch {
			case list:
				fmt.Println(columnize.SimpleFormat(statementRows(script)))
			case debug:
				spew.Dump(script)
			default:
				out, err := yaml.Marshal(script)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print a columnized statement listing instead of YAML")
	return cmd
}

// statementRows renders a Script's top-level statements as columnize rows:
// "index | kind | detail".
func statementRows(script *ast.Script) []string {
	rows := []string{"INDEX | KIND | DETAIL"}
	for i, stmt := range script.Statements {
		rows = append(rows, fmt.Sprintf("%d | %s | %s", i, stmt.Kind(), statementDetail(stmt)))
	}
	return rows
}

func statementDetail(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.ExprStatement:
		if s.Name != "" {
			return string(s.Name)
		}
		return "(bare expression)"
	case *ast.FunctionStatement:
		return string(s.Name)
	case *ast.LabelStatement:
		return string(s.Name)
	case *ast.JumpStatement:
		return string(s.Label)
	case *ast.IncludeStatement:
		return s.URL
	default:
		return ""
	}
}
