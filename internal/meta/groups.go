package meta

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GroupKind tells a volume-backed group from a fixed-size fallback range.
type GroupKind int

const (
	GroupVolume GroupKind = iota
	GroupRange
)

// Group is one labeled jump target in the chapter navigator: either a
// volume from the source's sparse volume map, or a fallback range chunk
// covering chapters no volume claims.
type Group struct {
	Key         string
	Kind        GroupKind
	Chapters    []int
	LabelTop    string
	LabelBottom string
}

// First returns the lowest chapter number in the group.
func (g Group) First() int {
	if len(g.Chapters) == 0 {
		return 0
	}
	return g.Chapters[0]
}

// BuildGroups partitions chapters 1..total into navigation groups. volumes
// is an optional sparse map of volume label to chapter-number strings; any
// chapters beyond the highest volume-covered number are chunked into
// fixed-size fallback ranges. Volumes always take precedence: a fallback
// range never overlaps volume-covered chapters.
func BuildGroups(volumes map[string][]string, total, chunk int) []Group {
	if chunk <= 0 {
		chunk = 25
	}
	var groups []Group

	maxCovered := 0
	for _, key := range sortVolumeKeys(volumes) {
		var chapters []int
		for _, s := range volumes[key] {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				chapters = append(chapters, n)
			}
		}
		if len(chapters) == 0 {
			continue
		}
		sort.Ints(chapters)
		lo, hi := chapters[0], chapters[len(chapters)-1]
		if hi > maxCovered {
			maxCovered = hi
		}
		groups = append(groups, Group{
			Key:         "vol-" + key,
			Kind:        GroupVolume,
			Chapters:    chapters,
			LabelTop:    "Vol " + key,
			LabelBottom: rangeLabel(lo, hi),
		})
	}

	for start := maxCovered + 1; start <= total; start += chunk {
		end := min(start+chunk-1, total)
		chapters := make([]int, 0, end-start+1)
		for n := start; n <= end; n++ {
			chapters = append(chapters, n)
		}
		groups = append(groups, Group{
			Key:      fmt.Sprintf("ch-%d-%d", start, end),
			Kind:     GroupRange,
			Chapters: chapters,
			LabelTop: "Ch " + rangeLabel(start, end),
		})
	}

	return groups
}

func rangeLabel(lo, hi int) string {
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return fmt.Sprintf("%d–%d", lo, hi)
}

// sortVolumeKeys orders volume labels numerically where possible, with
// non-numeric labels after all numeric ones in lexical order. The literal
// label "none" is a source artifact and is dropped.
func sortVolumeKeys(volumes map[string][]string) []string {
	keys := make([]string, 0, len(volumes))
	for k := range volumes {
		if strings.EqualFold(strings.TrimSpace(k), "none") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iNum := parseNumeric(keys[i])
		nj, jNum := parseNumeric(keys[j])
		switch {
		case iNum && jNum:
			if ni != nj {
				return ni < nj
			}
			return keys[i] < keys[j]
		case iNum:
			return true
		case jNum:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func parseNumeric(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}
