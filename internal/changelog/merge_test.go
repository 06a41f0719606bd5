package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daySection(key string, bullets ...string) Section {
	start, _ := time.ParseInLocation(dayKeyLayout, key, time.UTC)
	return Section{
		Key:     key,
		Label:   start.Format(dayLabelLayout),
		Start:   start,
		Bullets: bullets,
	}
}

func TestMerge_ReplacesExistingPeriod(t *testing.T) {
	existing := Document{Sections: []Section{
		daySection("2024-03-01", "- old entry"),
		daySection("2024-02-01", "- untouched"),
	}}

	merged := Merge(existing, []Section{daySection("2024-03-01", "- new entry")})

	require.Len(t, merged.Sections, 2)
	assert.Equal(t, []string{"- new entry"}, merged.Sections[0].Bullets)
	assert.Equal(t, "2024-02-01", merged.Sections[1].Key)
	assert.Equal(t, []string{"- untouched"}, merged.Sections[1].Bullets)
}

func TestMerge_InsertsNewestFirst(t *testing.T) {
	existing := Document{Sections: []Section{
		daySection("2024-03-05", "- a"),
		daySection("2024-03-01", "- b"),
	}}

	merged := Merge(existing, []Section{
		daySection("2024-03-10", "- newest"),
		daySection("2024-03-03", "- middle"),
		daySection("2024-02-20", "- oldest"),
	})

	assert.Equal(t, []string{
		"2024-03-10", "2024-03-05", "2024-03-03", "2024-03-01", "2024-02-20",
	}, merged.Keys())
}

func TestMerge_Idempotent(t *testing.T) {
	existing := Document{Sections: []Section{daySection("2024-02-01", "- kept")}}
	fresh := []Section{
		daySection("2024-03-01", "- one"),
		daySection("2024-02-15", "- two"),
	}

	once := Merge(existing, fresh)
	twice := Merge(once, fresh)

	assert.Equal(t, once, twice)
}

func TestMerge_NeverDuplicatesKeys(t *testing.T) {
	existing := Document{Sections: []Section{daySection("2024-03-01", "- old")}}

	merged := Merge(existing, []Section{daySection("2024-03-01", "- new")})

	count := 0
	for _, key := range merged.Keys() {
		if key == "2024-03-01" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"- new"}, merged.SectionByKey("2024-03-01").Bullets)
}

func TestMerge_PreservesHandWrittenSections(t *testing.T) {
	manual := Section{Key: "Unreleased", Label: "Unreleased", Bullets: []string{"- pending work"}}
	existing := Document{Sections: []Section{
		manual,
		daySection("2024-02-01", "- released"),
	}}

	merged := Merge(existing, []Section{daySection("2024-03-01", "- fresh")})

	require.Len(t, merged.Sections, 3)
	// the undated section stays at the top; the new dated section goes
	// before the first older dated one
	assert.Equal(t, "Unreleased", merged.Sections[0].Key)
	assert.Equal(t, "2024-03-01", merged.Sections[1].Key)
	assert.Equal(t, "2024-02-01", merged.Sections[2].Key)
}

func TestMerge_EmptyDocument(t *testing.T) {
	merged := Merge(Document{}, []Section{daySection("2024-03-01", "- first")})

	require.Len(t, merged.Sections, 1)
	assert.Equal(t, "2024-03-01", merged.Sections[0].Key)
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	existing := Document{Sections: []Section{daySection("2024-03-01", "- old")}}

	_ = Merge(existing, []Section{daySection("2024-03-01", "- new")})

	assert.Equal(t, []string{"- old"}, existing.Sections[0].Bullets)
}
