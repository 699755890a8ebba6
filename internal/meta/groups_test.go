package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroupsVolumesThenFallback(t *testing.T) {
	volumes := map[string][]string{
		"1": {"1", "2", "3"},
		"2": {"4", "5"},
	}
	groups := BuildGroups(volumes, 30, 25)
	require.Len(t, groups, 3)

	assert.Equal(t, "vol-1", groups[0].Key)
	assert.Equal(t, GroupVolume, groups[0].Kind)
	assert.Equal(t, "Vol 1", groups[0].LabelTop)
	assert.Equal(t, "1–3", groups[0].LabelBottom)

	assert.Equal(t, "vol-2", groups[1].Key)
	assert.Equal(t, "4–5", groups[1].LabelBottom)

	assert.Equal(t, "ch-6-30", groups[2].Key)
	assert.Equal(t, GroupRange, groups[2].Kind)
	assert.Equal(t, "Ch 6–30", groups[2].LabelTop)
	assert.Equal(t, 6, groups[2].First())
}

func TestBuildGroupsNoOverlap(t *testing.T) {
	volumes := map[string][]string{
		"1": {"1", "2", "3", "4", "5", "6", "7", "8"},
	}
	groups := BuildGroups(volumes, 60, 25)

	seen := map[int]string{}
	for _, g := range groups {
		for _, ch := range g.Chapters {
			if prev, dup := seen[ch]; dup {
				t.Fatalf("chapter %d in both %s and %s", ch, prev, g.Key)
			}
			seen[ch] = g.Key
		}
	}
	// Full coverage of 1..60.
	for ch := 1; ch <= 60; ch++ {
		assert.Contains(t, seen, ch)
	}
}

func TestBuildGroupsKeyOrdering(t *testing.T) {
	volumes := map[string][]string{
		"10":    {"30"},
		"2":     {"10"},
		"extra": {"40"},
		"none":  {"99"},
	}
	groups := BuildGroups(volumes, 0, 25)
	require.Len(t, groups, 3)

	// Numeric keys numerically first, non-numeric after, "none" dropped.
	assert.Equal(t, "vol-2", groups[0].Key)
	assert.Equal(t, "vol-10", groups[1].Key)
	assert.Equal(t, "vol-extra", groups[2].Key)
}

func TestBuildGroupsNoVolumeMap(t *testing.T) {
	groups := BuildGroups(nil, 55, 25)
	require.Len(t, groups, 3)
	assert.Equal(t, "ch-1-25", groups[0].Key)
	assert.Equal(t, "ch-26-50", groups[1].Key)
	assert.Equal(t, "ch-51-55", groups[2].Key)
	assert.Equal(t, "Ch 51–55", groups[2].LabelTop)
}

func TestBuildGroupsEdgeCases(t *testing.T) {
	// Non-numeric chapter strings are skipped; an all-junk volume vanishes.
	volumes := map[string][]string{
		"1": {"x", "y"},
		"2": {"3", "oops", "1"},
	}
	groups := BuildGroups(volumes, 4, 25)
	require.Len(t, groups, 2)
	assert.Equal(t, "vol-2", groups[0].Key)
	assert.Equal(t, []int{1, 3}, groups[0].Chapters)
	assert.Equal(t, "1–3", groups[0].LabelBottom)
	assert.Equal(t, "ch-4-4", groups[1].Key)
	assert.Equal(t, "Ch 4", groups[1].LabelTop)

	assert.Empty(t, BuildGroups(nil, 0, 25), "zero chapters yields no groups")
}
