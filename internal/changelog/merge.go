package changelog

// Merge combines freshly generated sections with an existing document.
//
// Policy (most-recent-wins, whole-section): a new section whose key
// already exists replaces the old section entirely; new keys are
// inserted in newest-first position by period start. Sections whose
// labels never parsed into a period key (hand-written content) are left
// untouched in place. The operation is idempotent: merging the same
// sections twice yields the same document as merging them once.
func Merge(existing Document, fresh []Section) Document {
	merged := Document{
		Summary:  existing.Summary,
		Sections: make([]Section, len(existing.Sections)),
	}
	copy(merged.Sections, existing.Sections)

	for _, sec := range fresh {
		if old := merged.SectionByKey(sec.Key); old != nil {
			*old = sec
			continue
		}
		merged.Sections = insertByStart(merged.Sections, sec)
	}

	return merged
}

// insertByStart places sec before the first dated section older than it.
// Undated sections act as anchors: insertion never reorders them.
func insertByStart(sections []Section, sec Section) []Section {
	at := len(sections)
	for i := range sections {
		if sections[i].Parsed() && sections[i].Start.Before(sec.Start) {
			at = i
			break
		}
	}

	sections = append(sections, Section{})
	copy(sections[at+1:], sections[at:])
	sections[at] = sec
	return sections
}
