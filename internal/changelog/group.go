package changelog

import (
	"sort"

	"github.com/evanhall-dev/shiplog/internal/model"
)

// Group buckets commits into date periods under the given mode.
// Every input commit lands in exactly one group. Groups are returned
// newest period first; within a group, commits keep their input order.
func Group(commits []model.Commit, mode GroupMode) []DateGroup {
	byKey := make(map[string]*DateGroup)
	order := make([]string, 0)

	for _, c := range commits {
		key, label, start := PeriodOf(c.Timestamp, mode)
		g, ok := byKey[key]
		if !ok {
			g = &DateGroup{Key: key, Label: label, Start: start}
			byKey[key] = g
			order = append(order, key)
		}
		g.Commits = append(g.Commits, c)
	}

	groups := make([]DateGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}

	// Input is normally newest-first already; sorting keeps the guarantee
	// when a source returns commits out of order. Stable so groups with
	// identical starts keep their first-seen order.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Start.After(groups[j].Start)
	})

	return groups
}
