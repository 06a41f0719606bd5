package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evanhall-dev/shiplog/internal/config"
	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
	"github.com/evanhall-dev/shiplog/internal/output"
	"github.com/evanhall-dev/shiplog/internal/provider"
)

// prompter asks for the parameters a run still needs. It produces the
// same configuration a fully flagged invocation would, so the pipeline
// does not care which path filled it in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// fillMissing walks the interactive flow: style, repository, branch,
// commit count, and grouping. Returns the repository reference.
func (p *prompter) fillMissing(cfg *config.Configuration) (string, error) {
	output.PrintInfo(p.out, "Configuration")

	cfg.Style = p.promptStyle(cfg.Style)

	repoRef, err := p.promptRepoRef()
	if err != nil {
		return "", err
	}

	if cfg.Branch == "" {
		fmt.Fprintln(p.out, "\nThe branch to generate the changelog from (usually 'main' or 'master')")
		branch := p.ask(fmt.Sprintf("Branch name [%s]: ", "main"))
		if branch != "" && branch != "main" {
			cfg.Branch = branch
		}
	}

	cfg.NumCommits = p.promptNumCommits(cfg.NumCommits)
	cfg.GroupBy = p.promptGroupBy(cfg.GroupBy)

	return repoRef, nil
}

func (p *prompter) promptStyle(current string) string {
	fmt.Fprintln(p.out, "\nSelect writing style:")
	styles := provider.ValidStyles()
	defaultIdx := 1
	for i, name := range styles {
		tpl := provider.TemplateFor(provider.Style(name))
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, name)
		fmt.Fprintf(p.out, "     %s\n", tpl.Description)
		fmt.Fprintf(p.out, "     Example: %s\n\n", tpl.Example)
		if name == current {
			defaultIdx = i + 1
		}
	}

	answer := p.ask(fmt.Sprintf("Choice [%d]: ", defaultIdx))
	if answer == "" {
		return styles[defaultIdx-1]
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(styles) {
		return styles[n-1]
	}
	return styles[defaultIdx-1]
}

func (p *prompter) promptRepoRef() (string, error) {
	fmt.Fprintln(p.out, "\nEnter your repository in one of these formats:")
	fmt.Fprintln(p.out, "- https://github.com/owner/repo")
	fmt.Fprintln(p.out, "- github.com/owner/repo")
	fmt.Fprintln(p.out, "- owner/repo")

	ref := p.ask("Repository URL: ")
	if ref == "" {
		fmt.Fprintln(p.out)
		return "", cerrors.MissingRepoArgument()
	}
	return ref, nil
}

func (p *prompter) promptNumCommits(current int) int {
	fmt.Fprintln(p.out, "\nHow many commits to process?")
	fmt.Fprintln(p.out, "  Enter a number or 'all' for the entire history")

	fallback := current
	if fallback == 0 {
		fallback = config.DefaultNumCommits
	}
	answer := p.ask(fmt.Sprintf("Commits [%d]: ", fallback))
	if answer == "" {
		return fallback
	}
	if strings.EqualFold(answer, "all") {
		return 0
	}
	if n, err := strconv.Atoi(answer); err == nil && n > 0 {
		return n
	}
	output.PrintWarning(p.out, fmt.Sprintf("Invalid input, using default: %d", fallback))
	return fallback
}

func (p *prompter) promptGroupBy(current string) string {
	fmt.Fprintln(p.out, "\nHow to group changes?")
	fmt.Fprintln(p.out, "  1. By day")
	fmt.Fprintln(p.out, "  2. By week")
	fmt.Fprintln(p.out, "  3. By month")

	options := map[string]string{"1": "day", "2": "week", "3": "month"}
	defaultChoice := "1"
	for choice, mode := range options {
		if mode == current {
			defaultChoice = choice
		}
	}

	answer := p.ask(fmt.Sprintf("Choice [%s]: ", defaultChoice))
	if mode, ok := options[answer]; ok {
		return mode
	}
	return options[defaultChoice]
}

// ask prints a prompt and reads one trimmed line. EOF reads as empty,
// letting every prompt fall back to its default.
func (p *prompter) ask(prompt string) string {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
