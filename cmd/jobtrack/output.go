package main

import (
	"fmt"
	"os"

	"jobtrack/internal/client"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorGreen, "✓ "+msg))
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorRed, "✗ "+msg))
}

func printField(label string, format string, args ...any) {
	val := fmt.Sprintf(format, args...)
	l := colorize(colorBold, label+":")
	fmt.Fprintf(os.Stdout, "  %s %s\n", l, val)
}

// statusBadge renders a status string in the color its display style
// maps to; unknown statuses stay uncolored.
func statusBadge(status string, style client.Style) string {
	switch style.Kind {
	case client.StyleInfo:
		return colorize(colorBlue, status)
	case client.StyleHighlight:
		return colorize(colorPurple, status)
	case client.StyleSuccess:
		return colorize(colorGreen, status)
	case client.StyleDanger:
		return colorize(colorRed, status)
	default:
		return status
	}
}

// cliNotifier routes the controller's transient notifications to the
// terminal.
type cliNotifier struct{}

func (cliNotifier) Success(message string) { printSuccess("%s", message) }
func (cliNotifier) Failure(message string) { printError("%s", message) }
