package ui

import "fmt"

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
)

// Success returns a success message with checkmark symbol.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Successf returns a formatted success message with checkmark symbol.
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error returns an error message with X symbol.
func Error(msg string) string {
	return fmt.Sprintf("%s %s", SymbolError, msg)
}

// FilePath returns an accent-styled file path.
func FilePath(path string) string {
	return Accent.Render(path)
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}
