package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhall-dev/shiplog/internal/config"
)

func promptWith(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return newPrompter(strings.NewReader(input), &out), &out
}

func baseConfig() *config.Configuration {
	return &config.Configuration{
		Model:      config.DefaultModel,
		GroupBy:    config.DefaultGroupBy,
		Style:      config.DefaultStyle,
		Output:     config.DefaultOutput,
		NumCommits: config.DefaultNumCommits,
	}
}

func TestPrompter_AllDefaults(t *testing.T) {
	// style, repo, branch, commits, grouping
	p, out := promptWith("\nocto/hello\n\n\n\n")
	cfg := baseConfig()

	ref, err := p.fillMissing(cfg)

	require.NoError(t, err)
	assert.Equal(t, "octo/hello", ref)
	assert.Equal(t, "regular", cfg.Style)
	assert.Empty(t, cfg.Branch)
	assert.Equal(t, config.DefaultNumCommits, cfg.NumCommits)
	assert.Equal(t, "day", cfg.GroupBy)
	assert.Contains(t, out.String(), "Select writing style")
}

func TestPrompter_ExplicitAnswers(t *testing.T) {
	p, _ := promptWith("1\nocto/hello\ndevelop\nall\n3\n")
	cfg := baseConfig()

	ref, err := p.fillMissing(cfg)

	require.NoError(t, err)
	assert.Equal(t, "octo/hello", ref)
	assert.Equal(t, "playful", cfg.Style)
	assert.Equal(t, "develop", cfg.Branch)
	assert.Zero(t, cfg.NumCommits, "'all' means no cap")
	assert.Equal(t, "month", cfg.GroupBy)
}

func TestPrompter_InvalidAnswersFallBack(t *testing.T) {
	p, out := promptWith("9\nocto/hello\n\nmany\n7\n")
	cfg := baseConfig()

	_, err := p.fillMissing(cfg)

	require.NoError(t, err)
	assert.Equal(t, "regular", cfg.Style)
	assert.Equal(t, config.DefaultNumCommits, cfg.NumCommits)
	assert.Equal(t, "day", cfg.GroupBy)
	assert.Contains(t, out.String(), "Invalid input")
}

func TestPrompter_EmptyRepoIsAnError(t *testing.T) {
	p, _ := promptWith("\n\n")
	cfg := baseConfig()

	_, err := p.fillMissing(cfg)

	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCodeFor(err))
}
