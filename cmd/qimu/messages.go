package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow, color.Bold)
)

// printError writes an "Error:" line to w, colored when w is a terminal.
func printError(w io.Writer, message string) {
	printLabeled(w, errorLabel, "Error:", message)
}

// printWarning writes a "Warning:" line to w, colored when w is a
// terminal.
func printWarning(w io.Writer, message string) {
	printLabeled(w, warnLabel, "Warning:", message)
}

func printLabeled(w io.Writer, label *color.Color, prefix, message string) {
	if shouldColorize(w) {
		fmt.Fprintf(w, "%s %s\n", label.Sprint(prefix), message)
		return
	}
	fmt.Fprintf(w, "%s %s\n", prefix, message)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
