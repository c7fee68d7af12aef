package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// ColorMode controls ANSI color in log and report output.
type ColorMode string

const (
	// ColorAuto colors terminals unless NO_COLOR is set or TERM is dumb.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors regardless of the destination.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates s; the empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", errors.Newf("unknown color mode %q (want auto, always or never)", s)
}

// IsTTY reports whether w is a terminal. Anything with an Fd method counts
// as a file.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// UseColor decides whether output to w should be colored under mode.
func UseColor(w io.Writer, mode ColorMode) bool {
	return useColor(mode, IsTTY(w), os.Getenv)
}

func useColor(mode ColorMode, tty bool, getenv func(string) string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return tty
}

// ApplyColorMode sets the process-wide color switch used by fatih/color for
// report and diff output written to w.
func ApplyColorMode(w io.Writer, mode ColorMode) {
	color.NoColor = !UseColor(w, mode)
}
