package meta

import "sort"

// BestArtwork picks the preferred image from a candidate set: primary
// images first, then by vote score, then by width. Candidates missing a
// vote score or width sort after those that have one. The order is total,
// so the pick is deterministic for any input ordering.
func BestArtwork(cands []Artwork) (Artwork, bool) {
	if len(cands) == 0 {
		return Artwork{}, false
	}
	ranked := make([]Artwork, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return artworkLess(ranked[i], ranked[j])
	})
	return ranked[0], true
}

// artworkLess reports whether a ranks before b.
func artworkLess(a, b Artwork) bool {
	if a.Primary != b.Primary {
		return a.Primary
	}
	if c := compareDesc(a.Votes, b.Votes); c != 0 {
		return c < 0
	}
	if c := compareDesc(a.Width, b.Width); c != 0 {
		return c < 0
	}
	return false
}

// compareDesc orders present values descending and nil after any value.
func compareDesc(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	default:
		return 0
	}
}
