package provider

import (
	"fmt"
	"strings"
)

// Style selects the tonal register of the generated changelog.
type Style string

const (
	StylePlayful   Style = "playful"
	StyleRegular   Style = "regular"
	StyleCorporate Style = "corporate"
)

// ValidStyles returns the accepted --style values.
func ValidStyles() []string {
	return []string{string(StylePlayful), string(StyleRegular), string(StyleCorporate)}
}

// IsValidStyle reports whether s names a known style.
func IsValidStyle(s string) bool {
	_, ok := styleTemplates[Style(s)]
	return ok
}

// StyleTemplate describes how one style phrases changelog entries.
type StyleTemplate struct {
	Description string
	Verbs       []string
	Tone        string
	Example     string
}

var styleTemplates = map[Style]StyleTemplate{
	StylePlayful: {
		Description: "Fun and energetic with emojis",
		Verbs:       []string{"🚀 Launched", "✨ Leveled up", "🐛 Squashed", "🗑️ Cleaned up", "🔒 Secured", "⚡ Turbocharged"},
		Tone:        "casual and exciting",
		Example:     "🚀 Launched an awesome new chat feature",
	},
	StyleRegular: {
		Description: "Clear and straightforward",
		Verbs:       []string{"Added", "Updated", "Fixed", "Removed", "Secured", "Improved"},
		Tone:        "clear and direct",
		Example:     "Added new chat feature",
	},
	StyleCorporate: {
		Description: "Professional and detailed",
		Verbs:       []string{"Implemented", "Enhanced", "Resolved", "Deprecated", "Strengthened", "Optimized"},
		Tone:        "formal and comprehensive",
		Example:     "Implemented enhanced communication functionality for improved user engagement",
	},
}

// TemplateFor returns the template for a style, falling back to regular
// for unknown values.
func TemplateFor(style Style) StyleTemplate {
	if tpl, ok := styleTemplates[style]; ok {
		return tpl
	}
	return styleTemplates[StyleRegular]
}

const systemPrompt = "You rewrite raw git commit messages into public-safe changelog bullets. " +
	"Respond with the formatted content only, no introductions or comments."

// SystemPrompt returns the instruction shared by all requests.
func SystemPrompt() string {
	return systemPrompt
}

// BuildGroupPrompt renders the user prompt for one date group. Commit
// messages are expected to be redacted before this point.
func BuildGroupPrompt(req Request) string {
	tpl := TemplateFor(req.Style)

	var b strings.Builder
	fmt.Fprintf(&b, "Transform the commit messages for %s into %s changelog entries.\n\n", req.Label, tpl.Tone)
	b.WriteString(redactionInstructions)
	b.WriteString("\nCommit messages:\n")
	for _, msg := range req.Messages {
		fmt.Fprintf(&b, "- %s\n", msg)
	}
	b.WriteString("\nStyle guide:\n")
	fmt.Fprintf(&b, "- Use %s language\n", tpl.Tone)
	fmt.Fprintf(&b, "- Start changes with appropriate verbs (%s)\n", strings.Join(tpl.Verbs, ", "))
	b.WriteString("- Focus on the impact and value of changes\n")
	b.WriteString("- Remove technical implementation details\n")
	b.WriteString("- Remove file names, paths, and dates from descriptions\n\n")
	fmt.Fprintf(&b, "Example format: %s\n\n", tpl.Example)
	b.WriteString("Response format: one line per change, each starting with \"- \".\n")
	return b.String()
}

// BuildSummaryPrompt renders the prompt for the optional top-of-file
// summary block.
func BuildSummaryPrompt(content string, style Style) string {
	tpl := TemplateFor(style)

	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following changelog in a %s tone.\n\n", tpl.Tone)
	b.WriteString(redactionInstructions)
	b.WriteString("\nAdditional summary rules:\n")
	b.WriteString("- Group similar changes together\n")
	b.WriteString("- Prioritize major features and improvements\n")
	b.WriteString("- Keep it to one short paragraph\n\n")
	b.WriteString("Changelog:\n")
	b.WriteString(content)
	b.WriteString("\n\nNo introductions or comments, just the summary.\n")
	return b.String()
}

const redactionInstructions = `Remove any sensitive information like:
- Internal URLs or endpoints
- Authentication details
- Database structures
- Environment variables
- Internal tool names
- User names or emails
- API keys or tokens
`
