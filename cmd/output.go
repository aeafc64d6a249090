package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorPrefix = color.New(color.FgRed, color.Bold)
	okColor     = color.New(color.FgGreen)
	noteColor   = color.New(color.FgYellow)
)

func printError(w io.Writer, err error) {
	_, _ = errorPrefix.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, err)
}

func printSuccess(w io.Writer, format string, a ...any) {
	_, _ = okColor.Fprintf(w, format+"\n", a...)
}

func printNote(w io.Writer, format string, a ...any) {
	_, _ = noteColor.Fprintf(w, format+"\n", a...)
}
