package meta

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher records every batch it is asked for.
type fakeFetcher struct {
	calls   [][]int
	failing bool
}

func (f *fakeFetcher) fetch(numbers []int) ([]Item, error) {
	f.calls = append(f.calls, append([]int(nil), numbers...))
	if f.failing {
		return nil, errors.New("store unavailable")
	}
	items := make([]Item, 0, len(numbers))
	for _, n := range numbers {
		if n%7 == 0 {
			continue // every 7th item has no row at all
		}
		it := Item{Number: n, Title: fmt.Sprintf("The One With %d", n)}
		if n%3 != 0 { // every 3rd item has no artwork
			it.Artwork = []Artwork{{URL: fmt.Sprintf("https://img/%d", n), Primary: true}}
		}
		items = append(items, it)
	}
	return items, nil
}

func TestHydratorFetchesOnlyUncached(t *testing.T) {
	f := &fakeFetcher{}
	h := NewHydrator("Episode", 64, f.fetch)
	h.Reset("frieren")

	require.NoError(t, h.Ensure("frieren", 10, 25))
	require.Len(t, f.calls, 1)
	assert.Len(t, f.calls[0], 16)

	// Same window again: zero additional fetches.
	require.NoError(t, h.Ensure("frieren", 10, 25))
	assert.Len(t, f.calls, 1)

	// Overlapping window fetches only the new indices.
	require.NoError(t, h.Ensure("frieren", 20, 30))
	require.Len(t, f.calls, 2)
	assert.Equal(t, []int{26, 27, 28, 29, 30}, f.calls[1])
}

func TestHydratorTitleAndArtworkResolution(t *testing.T) {
	f := &fakeFetcher{}
	h := NewHydrator("Episode", 64, f.fetch)
	h.Reset("frieren")
	require.NoError(t, h.Ensure("frieren", 1, 9))

	m, ok := h.Get(2)
	require.True(t, ok)
	assert.Equal(t, "The One With 2", m.Title)
	assert.Equal(t, "https://img/2", m.ImageURL)

	// No artwork row: cached with an empty URL, still present.
	m, ok = h.Get(3)
	require.True(t, ok)
	assert.Empty(t, m.ImageURL)

	// No row at all: synthesized label.
	m, ok = h.Get(7)
	require.True(t, ok)
	assert.Equal(t, "Episode 7", m.Title)
	assert.Empty(t, m.ImageURL)
}

func TestHydratorFailureCachesEmpty(t *testing.T) {
	f := &fakeFetcher{failing: true}
	h := NewHydrator("Chapter", 64, f.fetch)
	h.Reset("berserk")

	err := h.Ensure("berserk", 1, 5)
	assert.Error(t, err)

	// The failed batch is cached as empty: no retry loop.
	require.NoError(t, h.Ensure("berserk", 1, 5))
	assert.Len(t, f.calls, 1)

	m, ok := h.Get(4)
	require.True(t, ok)
	assert.Equal(t, "Chapter 4", m.Title)
}

func TestHydratorIdentityChangeDiscardsCache(t *testing.T) {
	f := &fakeFetcher{}
	h := NewHydrator("Episode", 64, f.fetch)
	h.Reset("frieren")
	require.NoError(t, h.Ensure("frieren", 1, 5))

	h.Reset("mushishi")
	_, ok := h.Get(2)
	assert.False(t, ok, "cache is discarded on series change")

	require.NoError(t, h.Ensure("mushishi", 1, 5))
	assert.Len(t, f.calls, 2)

	// A stale Ensure for the old series is dropped entirely.
	require.NoError(t, h.Ensure("frieren", 1, 5))
	assert.Len(t, f.calls, 2)
}

func TestHydratorBatchCap(t *testing.T) {
	f := &fakeFetcher{}
	h := NewHydrator("Chapter", 8, f.fetch)
	h.Reset("onepiece")

	require.NoError(t, h.Ensure("onepiece", 1, 100))
	require.Len(t, f.calls, 1)
	assert.Len(t, f.calls[0], 8, "a single Ensure never exceeds the batch cap")
}
