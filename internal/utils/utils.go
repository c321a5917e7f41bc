package utils

import (
	"fmt"
	"io"
	"os"
)

// Color output helpers
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// Output is where the Print helpers write; tests swap it for a buffer
var Output io.Writer = os.Stdout

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	printColored(ColorGreen, "✓ ", msg, args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	printColored(ColorRed, "✗ ", msg, args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	printColored(ColorCyan, "ℹ ", msg, args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	printColored(ColorYellow, "⚠ ", msg, args...)
}

func printColored(color, symbol, msg string, args ...interface{}) {
	fmt.Fprintf(Output, color+symbol+msg+ColorReset+"\n", args...)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
