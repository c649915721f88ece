package ui

import (
	"fmt"
	"io"
)

// Print helpers

// PrintHeader prints a styled header
func PrintHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// PrintSubheader prints a styled subheader
func PrintSubheader(w io.Writer, title string) {
	fmt.Fprintln(w, StyleSubtitle.Render(title))
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", StyleSuccess.Render("✓"), message)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", StyleError.Render("✗"), message)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", StyleWarning.Render("!"), message)
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", StyleInfo.Render("ℹ"), message)
}

// PrintBullet prints a single catalog entry line
func PrintBullet(w io.Writer, message string) {
	fmt.Fprintf(w, "  %s %s\n", StylePrimary.Render("•"), message)
}

// Truncate shortens s to at most max runes, appending "..." when cut
func Truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
