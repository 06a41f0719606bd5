package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGroupPrompt(t *testing.T) {
	req := Request{
		Label:    "01 Mar 2024",
		Style:    StyleCorporate,
		Messages: []string{"fix: login timeout", "feat: add export"},
	}

	prompt := BuildGroupPrompt(req)

	assert.Contains(t, prompt, "01 Mar 2024")
	assert.Contains(t, prompt, "formal and comprehensive")
	assert.Contains(t, prompt, "Implemented")
	assert.Contains(t, prompt, "fix: login timeout")
	assert.Contains(t, prompt, "feat: add export")
	assert.Contains(t, prompt, "Remove any sensitive information")
}

func TestBuildGroupPrompt_UnknownStyleFallsBackToRegular(t *testing.T) {
	prompt := BuildGroupPrompt(Request{Label: "x", Style: Style("nope"), Messages: []string{"m"}})
	assert.Contains(t, prompt, "clear and direct")
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("## 01 Mar 2024\n- Added export", StylePlayful)

	assert.Contains(t, prompt, "casual and exciting")
	assert.Contains(t, prompt, "- Added export")
	assert.Contains(t, prompt, "one short paragraph")
}

func TestStyleValidation(t *testing.T) {
	for _, s := range ValidStyles() {
		assert.True(t, IsValidStyle(s), s)
	}
	assert.False(t, IsValidStyle("sarcastic"))
}

func TestEnsureBullets(t *testing.T) {
	tests := map[string]struct {
		input string
		want  []string
	}{
		"already formatted": {
			input: "- Added export\n- Fixed login",
			want:  []string{"- Added export", "- Fixed login"},
		},
		"missing prefixes": {
			input: "Added export\nFixed login",
			want:  []string{"- Added export", "- Fixed login"},
		},
		"asterisk bullets normalized": {
			input: "* Added export",
			want:  []string{"- Added export"},
		},
		"blank lines dropped": {
			input: "\n- Added export\n\n\n- Fixed login\n",
			want:  []string{"- Added export", "- Fixed login"},
		},
		"empty response": {
			input: "",
			want:  nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ensureBullets(tc.input))
		})
	}
}
