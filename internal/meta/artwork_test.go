package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ip(v int) *int { return &v }

func TestBestArtworkRanking(t *testing.T) {
	tests := []struct {
		name  string
		cands []Artwork
		want  string
	}{
		{
			name: "primary beats votes and width",
			cands: []Artwork{
				{URL: "big", Votes: ip(900), Width: ip(4000)},
				{URL: "prim", Primary: true},
			},
			want: "prim",
		},
		{
			name: "votes break primary tie",
			cands: []Artwork{
				{URL: "a", Primary: true, Votes: ip(3)},
				{URL: "b", Primary: true, Votes: ip(10)},
			},
			want: "b",
		},
		{
			name: "missing votes sort last",
			cands: []Artwork{
				{URL: "noval", Width: ip(2000)},
				{URL: "voted", Votes: ip(1), Width: ip(100)},
			},
			want: "voted",
		},
		{
			name: "width breaks vote tie, missing width last",
			cands: []Artwork{
				{URL: "nowidth", Votes: ip(5)},
				{URL: "narrow", Votes: ip(5), Width: ip(800)},
				{URL: "wide", Votes: ip(5), Width: ip(1600)},
			},
			want: "wide",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestArtwork(tt.cands)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got.URL)
		})
	}
}

func TestBestArtworkEmpty(t *testing.T) {
	_, ok := BestArtwork(nil)
	assert.False(t, ok)
}

func TestBestArtworkDeterministicAcrossOrderings(t *testing.T) {
	cands := []Artwork{
		{URL: "a", Votes: ip(2), Width: ip(100)},
		{URL: "b", Votes: ip(2), Width: ip(100), Primary: true},
		{URL: "c", Width: ip(9000)},
	}
	best, _ := BestArtwork(cands)
	rev := []Artwork{cands[2], cands[1], cands[0]}
	best2, _ := BestArtwork(rev)
	assert.Equal(t, best.URL, best2.URL)
}
