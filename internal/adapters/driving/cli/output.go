package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI colour helpers. Colour is used only when stdout is a terminal
// and --no-color was not given.
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

func disableColor() {
	colorEnabled = false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func green(s string) string  { return colorize("32", s) }
func red(s string) string    { return colorize("31", s) }
func yellow(s string) string { return colorize("33", s) }
func cyan(s string) string   { return colorize("36", s) }
func bold(s string) string   { return colorize("1", s) }

// formatSize renders a byte count for table output.
func formatSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
