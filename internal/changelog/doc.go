// Package changelog implements the core changelog pipeline: grouping
// commits into date periods, merging freshly generated sections into an
// existing document, and parsing/rendering the Markdown representation.
//
// A Document is an ordered list of Sections, newest period first, with at
// most one Section per period key. Merging is whole-section: a regenerated
// period replaces the existing section rather than appending to it.
package changelog
