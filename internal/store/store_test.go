package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedSeries(t *testing.T, s *Store, slug, kind string, episodes, chapters int) Series {
	t.Helper()
	sr := Series{Slug: slug, Title: slug, Kind: kind, EpisodeCount: episodes, ChapterCount: chapters}
	require.NoError(t, s.UpsertSeries(&sr))
	require.NotZero(t, sr.ID)
	return sr
}

func TestUpsertSeriesKeepsID(t *testing.T) {
	s := openTest(t)

	sr := seedSeries(t, s, "frieren", "anime", 28, 0)

	again := Series{Slug: "frieren", Title: "Frieren: Beyond Journey's End", Kind: "anime", EpisodeCount: 28}
	require.NoError(t, s.UpsertSeries(&again))
	assert.Equal(t, sr.ID, again.ID)

	got, err := s.SeriesBySlug("frieren")
	require.NoError(t, err)
	assert.Equal(t, "Frieren: Beyond Journey's End", got.Title)
}

func TestSeriesBySlugMissing(t *testing.T) {
	s := openTest(t)

	_, err := s.SeriesBySlug("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllSeriesFiltersByKind(t *testing.T) {
	s := openTest(t)
	seedSeries(t, s, "berserk", "manga", 0, 380)
	seedSeries(t, s, "akira", "anime", 1, 0)
	seedSeries(t, s, "monster", "manga", 74, 162)

	manga, err := s.AllSeries("manga")
	require.NoError(t, err)
	require.Len(t, manga, 2)
	assert.Equal(t, "berserk", manga[0].Slug)
	assert.Equal(t, "monster", manga[1].Slug)

	all, err := s.AllSeries("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestItemsByNumbersSkipsMissing(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "mushishi", "anime", 26, 0)

	for n := 1; n <= 5; n++ {
		_, err := s.AddItem(sr.ID, KindEpisode, n, "")
		require.NoError(t, err)
	}

	rows, err := s.ItemsByNumbers(sr.ID, KindEpisode, []int{2, 4, 9})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 4, rows[1].Number)
}

func TestArtworkRoundTrip(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "lain", "anime", 13, 0)

	id, err := s.AddItem(sr.ID, KindEpisode, 1, "Weird")
	require.NoError(t, err)

	votes, width := 12, 1920
	require.NoError(t, s.AddArtwork(id, "https://img/a.jpg", true, &votes, &width))
	require.NoError(t, s.AddArtwork(id, "https://img/b.jpg", false, nil, nil))

	art, err := s.ArtworkForItems([]int64{id})
	require.NoError(t, err)
	require.Len(t, art[id], 2)

	var primary, bare ArtworkRow
	for _, a := range art[id] {
		if a.Primary {
			primary = a
		} else {
			bare = a
		}
	}
	require.NotNil(t, primary.Votes)
	assert.Equal(t, 12, *primary.Votes)
	assert.Nil(t, bare.Votes)
	assert.Nil(t, bare.Width)
}

func TestCharactersByRange(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "hunter-x-hunter", "anime", 148, 0)

	names := []string{"Gon", "Killua", "Kurapika", "Leorio", "Hisoka"}
	for i, name := range names {
		require.NoError(t, s.AddCharacter(sr.ID, i+1, name, "MAIN", ""))
	}

	chars, err := s.CharactersByRange(sr.ID, 2, 4)
	require.NoError(t, err)
	require.Len(t, chars, 3)
	assert.Equal(t, "Killua", chars[0].Name)
	assert.Equal(t, "Leorio", chars[2].Name)

	n, err := s.CharacterCount(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestVolumeMapReplaces(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "witch-hat", "manga", 0, 90)

	require.NoError(t, s.SetVolumeMap(sr.ID, map[string][]string{
		"1": {"1", "2", "3"},
		"2": {"4", "5"},
	}))
	require.NoError(t, s.SetVolumeMap(sr.ID, map[string][]string{
		"1": {"1", "2"},
	}))

	vols, err := s.VolumeMap(sr.ID)
	require.NoError(t, err)
	require.Len(t, vols, 1)
	assert.Equal(t, []string{"1", "2"}, vols["1"])
}

func TestProgressNeverDecreases(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "vinland-saga", "anime", 24, 0)

	require.NoError(t, s.SetProgress(sr.ID, KindEpisode, 7))
	require.NoError(t, s.SetProgress(sr.ID, KindEpisode, 3))

	n, err := s.Progress(sr.ID, KindEpisode)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestProgressUnsetIsZero(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "planetes", "anime", 26, 0)

	n, err := s.Progress(sr.ID, KindChapter)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestContinueListSkipsFinished(t *testing.T) {
	s := openTest(t)
	watching := seedSeries(t, s, "dungeon-meshi", "anime", 24, 0)
	finished := seedSeries(t, s, "fma", "anime", 64, 0)
	reading := seedSeries(t, s, "vagabond", "manga", 0, 327)

	require.NoError(t, s.SetProgress(watching.ID, KindEpisode, 10))
	require.NoError(t, s.SetProgress(finished.ID, KindEpisode, 64))
	require.NoError(t, s.SetProgress(reading.ID, KindChapter, 100))

	list, err := s.ContinueList(10)
	require.NoError(t, err)
	require.Len(t, list, 2)

	slugs := map[string]int{}
	for _, e := range list {
		slugs[e.Series.Slug] = e.Next
	}
	assert.Equal(t, 11, slugs["dungeon-meshi"])
	assert.Equal(t, 101, slugs["vagabond"])
}

func TestRatings(t *testing.T) {
	s := openTest(t)
	sr := seedSeries(t, s, "haibane", "anime", 13, 0)

	score, err := s.Rating(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	require.NoError(t, s.SetRating(sr.ID, 9))
	require.NoError(t, s.SetRating(sr.ID, 10))

	score, err = s.Rating(sr.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, score)

	rated, err := s.RecentRatings(5)
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.Equal(t, 10, rated[0].Score)
	assert.Equal(t, "haibane", rated[0].Series.Slug)
}
