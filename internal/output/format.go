// Package output provides terminal status formatting for the shiplog
// CLI. It is kept dependency-light to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if
// unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintHeader prints the banner shown at the start of a run, with the
// repository name centered in a dim rule.
func PrintHeader(out io.Writer, repoName string) {
	termWidth := GetTerminalWidth()
	cyan := color.New(color.FgCyan, color.Faint).SprintFunc()

	label := " " + repoName + " "
	lineLen := (termWidth - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(out, "%s%s%s\n", cyan(line), cyan(label), cyan(line))
}

// PrintSuccess prints a green checkmark line for a completed step.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintInfo prints a neutral informational line.
func PrintInfo(out io.Writer, message string) {
	blue := color.New(color.FgBlue).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", blue("ℹ"), message)
}

// PrintWarning prints a yellow warning line.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), message)
}
