package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	titleHeading   = "# Changelog"
	summaryHeading = "## Summary"
	sectionPrefix  = "## "
)

// Load reads an existing changelog file. A missing file is not an
// error; it yields an empty document so first runs and incremental
// runs share one code path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a Markdown changelog into a Document. Section headings
// whose labels match a period layout get their keys back; anything else
// (hand-added sections) is kept verbatim, keyed by its raw label, and
// will survive merges untouched.
func Parse(r io.Reader) (Document, error) {
	var (
		doc       Document
		current   *Section
		inSummary bool
		summary   []string
	)

	flush := func() {
		if current != nil {
			current.Bullets = trimTrailingBlank(current.Bullets)
			doc.Sections = append(doc.Sections, *current)
			current = nil
		}
		if inSummary {
			doc.Summary = strings.TrimSpace(strings.Join(summary, "\n"))
			inSummary = false
			summary = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == titleHeading:
			flush()
		case trimmed == summaryHeading:
			flush()
			inSummary = true
		case strings.HasPrefix(trimmed, sectionPrefix):
			flush()
			label := strings.TrimSpace(strings.TrimPrefix(trimmed, sectionPrefix))
			sec := Section{Key: label, Label: label}
			if key, start, ok := ParseLabel(label); ok {
				sec.Key = key
				sec.Start = start
			}
			current = &sec
		case inSummary:
			summary = append(summary, line)
		case current != nil && trimmed != "":
			current.Bullets = append(current.Bullets, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("reading changelog: %w", err)
	}
	flush()

	return doc, nil
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
