/*
File    : barescript/cmd/scriptparse/errors.go

Colorized rendering of a *perror.ParserError for the terminal. Color is
disabled automatically when stderr is not a terminal (github.com/mattn/go-isatty)
or when --no-color is set, and written through github.com/mattn/go-colorable
so the escape codes also work on legacy Windows consoles — the same two
libraries fatih/color itself pulls in for the same reason.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func printParseError(w io.Writer, err error, noColor bool) {
	out := w
	if f, ok := w.(*os.File); ok {
		out = colorable.NewColorable(f)
	}

	useColor := !noColor
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
		useColor = false
	}

	if !useColor {
		io.WriteString(out, err.Error()+"\n")
		return
	}
	color.New(color.FgRed).Fprintln(out, err.Error())
}
