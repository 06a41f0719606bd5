package changelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Render writes the document as Markdown, newest period first.
// Rendering is idempotent: the same document always produces identical
// output, and Parse(Render(doc)) round-trips section keys and bullets.
func Render(doc *Document, w io.Writer) error {
	if _, err := io.WriteString(w, titleHeading+"\n"); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	if doc.Summary != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n\n%s\n", summaryHeading, doc.Summary); err != nil {
			return fmt.Errorf("rendering summary: %w", err)
		}
	}

	for _, sec := range doc.Sections {
		if err := renderSection(&sec, w); err != nil {
			return fmt.Errorf("rendering section %s: %w", sec.Key, err)
		}
	}

	return nil
}

// RenderString is a convenience wrapper that renders to a string.
func RenderString(doc *Document) (string, error) {
	var b strings.Builder
	if err := Render(doc, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderSection(sec *Section, w io.Writer) error {
	label := sec.Label
	if label == "" {
		label = sec.Key
	}
	if _, err := fmt.Fprintf(w, "\n%s%s\n\n", sectionPrefix, label); err != nil {
		return err
	}
	for _, bullet := range sec.Bullets {
		if _, err := io.WriteString(w, bullet+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile renders the document to path atomically: the content goes to
// a temp file in the same directory which is then renamed over the
// target, so a failed run never leaves a truncated changelog behind.
func WriteFile(doc *Document, path string) error {
	content, err := RenderString(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
