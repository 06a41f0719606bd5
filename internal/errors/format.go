package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// palette holds the render functions for one output mode. Color
// functions degrade to plain text when the terminal does not support
// them; the plain palette skips color handling entirely.
type palette struct {
	errorLabel func(...any) string
	message    func(...any) string
	category   func(...any) string
	usageLabel func(...any) string
	usageText  func(...any) string
	fixLabel   func(...any) string
	bullet     func(...any) string
}

var colorPalette = palette{
	errorLabel: color.New(color.FgRed, color.Bold).SprintFunc(),
	message:    color.New(color.FgRed).SprintFunc(),
	category:   color.New(color.FgYellow).SprintFunc(),
	usageLabel: color.New(color.FgCyan, color.Bold).SprintFunc(),
	usageText:  color.New(color.FgCyan).SprintFunc(),
	fixLabel:   color.New(color.FgGreen, color.Bold).SprintFunc(),
	bullet:     color.New(color.FgGreen).SprintFunc(),
}

var plainPalette = palette{
	errorLabel: fmt.Sprint,
	message:    fmt.Sprint,
	category:   fmt.Sprint,
	usageLabel: fmt.Sprint,
	usageText:  fmt.Sprint,
	fixLabel:   fmt.Sprint,
	bullet:     fmt.Sprint,
}

// FormatError formats a CLIError for display in the terminal.
func FormatError(err *CLIError) string {
	return colorPalette.render(err)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	return plainPalette.render(err)
}

func (p palette) render(err *CLIError) string {
	if err == nil {
		return ""
	}
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s]: %s\n",
		p.errorLabel("Error"), p.category(err.Category.String()), p.message(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", p.usageLabel("Usage: "), p.usageText(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.fixLabel("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", p.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
