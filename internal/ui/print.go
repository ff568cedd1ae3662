package ui

import (
	"fmt"
	"io"
	"os"
)

// Output destinations. The changelog itself goes to Stdout; tests swap these.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Success prints a success message with a checkmark icon
func Success(msg string) {
	fmt.Fprintln(Stdout, SuccessStyle.Render("✓ "+msg))
}

// Successf prints a formatted success message with a checkmark icon
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Error prints an error message with an X icon
func Error(msg string) {
	fmt.Fprintln(Stderr, ErrorStyle.Render("✗ "+msg))
}

// Warning prints a warning message with a warning icon
func Warning(msg string) {
	WarningTo(Stdout, msg)
}

// WarningTo prints a warning message with a warning icon to w
func WarningTo(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningStyle.Render("⚠ "+msg))
}

// Print prints a plain message (no styling)
func Print(msg string) {
	fmt.Fprintln(Stdout, msg)
}

// Newline prints an empty line
func Newline() {
	fmt.Fprintln(Stdout)
}

// Title prints a large title with background
func Title(title string) {
	fmt.Fprintln(Stdout, TitleStyle.Render(title))
}

// Header prints a header (bold, colored, no background)
func Header(header string) {
	fmt.Fprintln(Stdout, HeaderStyle.Render(header))
}

// Dim returns dimmed/muted text
func Dim(text string) string {
	return DimStyle.Render(text)
}

// Bold returns bold text
func Bold(text string) string {
	return BoldStyle.Render(text)
}

// Highlight returns highlighted text (primary color, bold)
func Highlight(text string) string {
	return HighlightStyle.Render(text)
}
