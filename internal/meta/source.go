package meta

import (
	"anicouch/internal/store"
)

// EpisodeFetch builds a FetchFunc that loads episodes and their artwork
// candidates for one series from the library database.
func EpisodeFetch(st *store.Store, seriesID int64) FetchFunc {
	return itemFetch(st, seriesID, store.KindEpisode)
}

// ChapterFetch builds a FetchFunc that loads chapters for one series.
func ChapterFetch(st *store.Store, seriesID int64) FetchFunc {
	return itemFetch(st, seriesID, store.KindChapter)
}

func itemFetch(st *store.Store, seriesID int64, kind string) FetchFunc {
	return func(numbers []int) ([]Item, error) {
		rows, err := st.ItemsByNumbers(seriesID, kind, numbers)
		if err != nil {
			return nil, err
		}
		ids := make([]int64, len(rows))
		for i, r := range rows {
			ids[i] = r.ID
		}
		art, err := st.ArtworkForItems(ids)
		if err != nil {
			return nil, err
		}

		items := make([]Item, len(rows))
		for i, r := range rows {
			it := Item{Number: r.Number, Title: r.Title}
			for _, a := range art[r.ID] {
				it.Artwork = append(it.Artwork, Artwork{
					URL:     a.URL,
					Primary: a.Primary,
					Votes:   a.Votes,
					Width:   a.Width,
				})
			}
			items[i] = it
		}
		return items, nil
	}
}

// CharacterFetch builds a FetchFunc that loads cast members by their
// position in the series cast list.
func CharacterFetch(st *store.Store, seriesID int64) FetchFunc {
	return func(numbers []int) ([]Item, error) {
		if len(numbers) == 0 {
			return nil, nil
		}
		first, last := numbers[0], numbers[0]
		for _, n := range numbers[1:] {
			first, last = min(first, n), max(last, n)
		}
		chars, err := st.CharactersByRange(seriesID, first, last)
		if err != nil {
			return nil, err
		}

		wanted := map[int]bool{}
		for _, n := range numbers {
			wanted[n] = true
		}
		var items []Item
		for _, c := range chars {
			if !wanted[c.Ord] {
				continue
			}
			it := Item{Number: c.Ord, Title: c.Name}
			if c.ImageURL != "" {
				it.Artwork = []Artwork{{URL: c.ImageURL, Primary: true}}
			}
			items = append(items, it)
		}
		return items, nil
	}
}
