package changelog

import (
	"time"

	"github.com/evanhall-dev/shiplog/internal/model"
)

// GroupMode selects the period length commits are bucketed into.
type GroupMode string

const (
	GroupByDay   GroupMode = "day"
	GroupByWeek  GroupMode = "week"
	GroupByMonth GroupMode = "month"
)

// ValidGroupModes returns the accepted --group-by values.
func ValidGroupModes() []string {
	return []string{string(GroupByDay), string(GroupByWeek), string(GroupByMonth)}
}

// IsValidGroupMode reports whether s names a known grouping mode.
func IsValidGroupMode(s string) bool {
	switch GroupMode(s) {
	case GroupByDay, GroupByWeek, GroupByMonth:
		return true
	}
	return false
}

// DateGroup is an ordered bucket of commits sharing one period.
// Commits keep their fetch order (newest first within the run).
type DateGroup struct {
	Key     string
	Label   string
	Start   time.Time
	Commits []model.Commit
}

// Section is the formatted changelog content for one period key.
type Section struct {
	// Key is the canonical period identifier (e.g. "2024-03-01",
	// "2024-W09", "2024-03"). Sections recovered from a hand-edited
	// document may carry a raw label as their key when no period layout
	// matches; such sections are never replaced by a merge.
	Key   string
	Label string
	// Start is the first instant of the period. Zero for sections whose
	// label could not be parsed back into a period.
	Start   time.Time
	Bullets []string
}

// Parsed reports whether the section's label mapped back to a period key.
func (s Section) Parsed() bool {
	return !s.Start.IsZero()
}

// Document is an ordered sequence of sections, newest period first.
type Document struct {
	// Summary is the optional "## Summary" block kept at the top of the
	// file, regenerated wholesale when summaries are enabled.
	Summary  string
	Sections []Section
}

// SectionByKey returns a pointer to the section with the given key,
// or nil if no such section exists.
func (d *Document) SectionByKey(key string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Key == key {
			return &d.Sections[i]
		}
	}
	return nil
}

// Keys returns all section keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		keys[i] = s.Key
	}
	return keys
}

// IsEmpty reports whether the document has no sections and no summary.
func (d *Document) IsEmpty() bool {
	return d.Summary == "" && len(d.Sections) == 0
}

// LatestSectionStart returns the newest period start in the document.
// Returns the zero time when the document has no dated sections.
// Used to pick the fetch cutoff on incremental runs.
func (d *Document) LatestSectionStart() time.Time {
	var latest time.Time
	for _, s := range d.Sections {
		if s.Start.After(latest) {
			latest = s.Start
		}
	}
	return latest
}
