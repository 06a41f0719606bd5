package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhall-dev/shiplog/internal/model"
)

func commitAt(sha string, ts time.Time) model.Commit {
	return model.Commit{SHA: sha, Message: "msg " + sha, Timestamp: ts}
}

func TestGroup_EveryCommitInExactlyOneGroup(t *testing.T) {
	commits := []model.Commit{
		commitAt("a", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)),
		commitAt("b", time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)),
		commitAt("c", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		commitAt("d", time.Date(2024, 2, 12, 8, 0, 0, 0, time.UTC)),
	}

	for _, mode := range []GroupMode{GroupByDay, GroupByWeek, GroupByMonth} {
		groups := Group(commits, mode)

		seen := make(map[string]int)
		for _, g := range groups {
			for _, c := range g.Commits {
				seen[c.SHA]++
			}
		}
		for _, c := range commits {
			assert.Equal(t, 1, seen[c.SHA], "mode %s: commit %s", mode, c.SHA)
		}
	}
}

func TestGroup_ByDay(t *testing.T) {
	commits := []model.Commit{
		commitAt("new", time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)),
		commitAt("old", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
	}

	groups := Group(commits, GroupByDay)

	require.Len(t, groups, 1)
	assert.Equal(t, "2024-03-01", groups[0].Key)
	require.Len(t, groups[0].Commits, 2)
	// fetch order preserved within the group
	assert.Equal(t, "new", groups[0].Commits[0].SHA)
	assert.Equal(t, "old", groups[0].Commits[1].SHA)
}

func TestGroup_NewestFirst(t *testing.T) {
	commits := []model.Commit{
		commitAt("mar", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		commitAt("feb", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
		commitAt("jan", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
	}

	groups := Group(commits, GroupByMonth)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"2024-03", "2024-02", "2024-01"}, []string{groups[0].Key, groups[1].Key, groups[2].Key})
	for i := 1; i < len(groups); i++ {
		assert.True(t, groups[i-1].Start.After(groups[i].Start))
	}
}

func TestGroup_OutOfOrderInputStillSorted(t *testing.T) {
	commits := []model.Commit{
		commitAt("old", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		commitAt("new", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	groups := Group(commits, GroupByDay)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-02-01", groups[0].Key)
	assert.Equal(t, "2024-01-01", groups[1].Key)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil, GroupByDay))
}

func TestGroup_IdenticalTimestampsShareGroupInOrder(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	commits := []model.Commit{commitAt("first", ts), commitAt("second", ts)}

	groups := Group(commits, GroupByWeek)

	require.Len(t, groups, 1)
	assert.Equal(t, "first", groups[0].Commits[0].SHA)
	assert.Equal(t, "second", groups[0].Commits[1].SHA)
}
