package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anicouch/internal/store"
)

func seedLibrary(t *testing.T) (*store.Store, int64) {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	sr := store.Series{Slug: "mob-psycho", Title: "Mob Psycho 100", Kind: "anime", EpisodeCount: 12}
	require.NoError(t, st.UpsertSeries(&sr))
	return st, sr.ID
}

func TestEpisodeFetchThroughHydrator(t *testing.T) {
	st, seriesID := seedLibrary(t)

	for n := 1; n <= 6; n++ {
		id, err := st.AddItem(seriesID, store.KindEpisode, n, "")
		require.NoError(t, err)
		if n == 2 {
			votes := 40
			require.NoError(t, st.AddArtwork(id, "https://img/ep2-alt.jpg", false, &votes, nil))
			require.NoError(t, st.AddArtwork(id, "https://img/ep2.jpg", true, nil, nil))
		}
	}

	h := NewHydrator("Episode", 64, EpisodeFetch(st, seriesID))
	h.Reset("mob-psycho")
	require.NoError(t, h.Ensure("mob-psycho", 1, 6))

	m, ok := h.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Episode 2", m.Title)
	assert.Equal(t, "https://img/ep2.jpg", m.ImageURL)

	// Episode rows without artwork still hydrate with a fallback title.
	m, ok = h.Get(5)
	require.True(t, ok)
	assert.Equal(t, "Episode 5", m.Title)
	assert.Empty(t, m.ImageURL)
}

func TestCharacterFetchKeepsNames(t *testing.T) {
	st, seriesID := seedLibrary(t)

	require.NoError(t, st.AddCharacter(seriesID, 1, "Mob", "MAIN", "https://img/mob.jpg"))
	require.NoError(t, st.AddCharacter(seriesID, 2, "Reigen", "MAIN", ""))

	h := NewHydrator("Character", 64, CharacterFetch(st, seriesID))
	h.Reset("mob-psycho")
	require.NoError(t, h.Ensure("mob-psycho", 1, 2))

	m, ok := h.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Mob", m.Title)
	assert.Equal(t, "https://img/mob.jpg", m.ImageURL)

	m, ok = h.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Reigen", m.Title)
	assert.Empty(t, m.ImageURL)
}
