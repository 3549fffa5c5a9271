// Package term detects terminal properties.
package term

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// GetSize returns the terminal dimensions (width, height).
// Returns (0, 0) if the file is not a terminal or size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	if f == nil {
		return 0, 0
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// Width returns the width of the controlling terminal in cells.
//
// Prompts are rendered inside command substitution, so stdout is usually a
// pipe; stderr and stdin are tried next, then $COLUMNS. ok is false when no
// source knows the width.
func Width() (width int, ok bool) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, _ := GetSize(f); w > 0 {
			return w, true
		}
	}
	return columnsFromEnv()
}

func columnsFromEnv() (int, bool) {
	v := os.Getenv("COLUMNS")
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ColorEnabled reports whether ANSI styling should be written to f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
