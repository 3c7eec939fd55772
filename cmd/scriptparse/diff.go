/*
File    : barescript/cmd/scriptparse/diff.go

`scriptparse diff <a> <b>` parses two scripts and renders a unified diff of
their canonical YAML document forms via github.com/pmezard/go-difflib —
useful for comparing two revisions of a script, or a script before and
after a refactor, without caring about surface formatting differences that
don't change the parsed structure.
*/
package main

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/barescript-go/barescript/parser"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Diff the canonical document form of two parsed scripts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")

			aYAML, err := parseToYAML(args[0])
			if err != nil {
				printParseError(os.Stderr, err, noColor)
				os.Exit(1)
			}
			bYAML, err := parseToYAML(args[1])
			if err != nil {
				printParseError(os.Stderr, err, noColor)
				os.Exit(1)
			}

			diff := difflib.UnifiedDiff{
				A:        difflib.SplitLines(aYAML),
				B:        difflib.SplitLines(bYAML),
				FromFile: args[0],
				ToFile:   args[1],
				Context:  3,
			}
			text, err := difflib.GetUnifiedDiffString(diff)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Println("no structural difference")
				return nil
			}
			fmt.Print(text)
			return nil
		},
	}
}

func parseToYAML(path string) (string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	script, err := parser.ParseScriptString(string(text))
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(script)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
