package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, print func(w *bytes.Buffer)) string {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	var buf bytes.Buffer
	print(&buf)
	return buf.String()
}

func TestPrintHeader(t *testing.T) {
	out := capture(t, func(w *bytes.Buffer) {
		PrintHeader(w, "octocat/hello")
	})

	assert.Contains(t, out, " octocat/hello ")
	assert.True(t, strings.HasSuffix(out, "\n"))
	// the label sits between two rule segments
	parts := strings.Split(strings.TrimSuffix(out, "\n"), " octocat/hello ")
	assert.Len(t, parts, 2)
	for _, p := range parts {
		assert.GreaterOrEqual(t, strings.Count(p, "─"), 3)
	}
}

func TestPrintStatusLines(t *testing.T) {
	tests := map[string]struct {
		print  func(w *bytes.Buffer)
		symbol string
	}{
		"success": {print: func(w *bytes.Buffer) { PrintSuccess(w, "done") }, symbol: "✓"},
		"info":    {print: func(w *bytes.Buffer) { PrintInfo(w, "done") }, symbol: "ℹ"},
		"warning": {print: func(w *bytes.Buffer) { PrintWarning(w, "done") }, symbol: "⚠"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out := capture(t, tc.print)
			assert.Equal(t, tc.symbol+" done\n", out)
		})
	}
}
