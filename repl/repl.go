/*
File    : barescript/repl/repl.go

Package repl implements an interactive read-parse-print loop over package
parser. There is no evaluator here: the REPL's job is to show, line by line,
the statements a line lowers into — the canonical document form package
ast/ast_yaml.go produces — and to render any parse error with a caret.

Adapted from go-mix's repl/repl.go, which drives a full lex-parse-eval
pipeline with a persistent evaluator. This REPL keeps go-mix's banner,
readline-based line editing, and colorized success/error output, but drives
ParseScriptString on each input line in isolation instead of an evaluator,
and prints the parsed Script's YAML form instead of a runtime result. Nothing
carries over between input lines: a trailing backslash continuation is not
joined with the next line.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/barescript-go/barescript/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session that parses one effective line at a time.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Enter a line of script; it is parsed in isolation and shown as its document form.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until '.exit', EOF, or a readline error.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.parseAndPrint(writer, line)
	}
}

// parseAndPrint parses a single input line as a one-line script and prints
// its canonical YAML document form, or a colorized caret-rendered error.
func (r *Repl) parseAndPrint(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	script, err := parser.ParseScriptString(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	out, err := yaml.Marshal(script)
	if err != nil {
		redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", err)
		return
	}
	yellowColor.Fprint(writer, string(out))
}
