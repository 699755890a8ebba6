package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"anicouch/internal/cache"
	"anicouch/internal/store"
)

// libraryEntry is one series plus the tracking state shown on its card.
type libraryEntry struct {
	series   store.Series
	progress int
	rating   int
}

// LibraryScreen shows the tracked series of one kind as a filterable grid.
type LibraryScreen struct {
	st       *store.Store
	imgCache *cache.ImageCache

	kind  string // "anime" or "manga"
	title string

	all       []libraryEntry
	filtered  []libraryEntry
	gridItems []GridItem
	grid      *FocusGrid
	filterBar *FilterBar

	loaded    bool
	loading   bool
	loadError string
	scroll    ScrollState

	OnSeriesSelected func(slug string)

	errDisplay ErrorDisplay
	mu         sync.Mutex
}

func NewLibraryScreen(st *store.Store, imgCache *cache.ImageCache, kind string) *LibraryScreen {
	cols := (ScreenWidth - SectionPadding*2) / (PosterWidth + PosterGap)
	title := "Anime"
	status := []string{"All", "Watching", "Finished", "Untouched"}
	if kind == "manga" {
		title = "Manga"
		status = []string{"All", "Reading", "Finished", "Untouched"}
	}
	return &LibraryScreen{
		st:       st,
		imgCache: imgCache,
		kind:     kind,
		title:    title,
		grid:     NewFocusGrid(cols, 0),
		filterBar: NewFilterBar([]FilterOption{
			{Label: "Status", Options: status},
			{Label: "Sort", Options: []string{"Title", "Year", "Rating"}},
		}),
	}
}

func (ls *LibraryScreen) Name() string { return "Library: " + ls.title }

func (ls *LibraryScreen) OnEnter() {
	if !ls.loading {
		ls.loading = true
		go ls.loadData()
	}
}

func (ls *LibraryScreen) OnExit() {}

func (ls *LibraryScreen) loadData() {
	series, err := ls.st.AllSeries(ls.kind)
	if err != nil {
		log.Printf("Failed to load library: %v", err)
		ls.mu.Lock()
		ls.loading = false
		ls.loadError = "Failed to load: " + err.Error()
		ls.mu.Unlock()
		return
	}

	entries := make([]libraryEntry, len(series))
	for i, sr := range series {
		entries[i].series = sr
		kind := store.KindEpisode
		if sr.Kind == "manga" {
			kind = store.KindChapter
		}
		if n, err := ls.st.Progress(sr.ID, kind); err == nil {
			entries[i].progress = n
		}
		if score, err := ls.st.Rating(sr.ID); err == nil {
			entries[i].rating = score
		}
	}

	ls.mu.Lock()
	ls.all = entries
	ls.loaded = true
	ls.loading = false
	ls.loadError = ""
	ls.applyFilters()
	ls.mu.Unlock()
}

func (e *libraryEntry) total() int {
	if e.series.Kind == "manga" {
		return e.series.ChapterCount
	}
	return e.series.EpisodeCount
}

// applyFilters rebuilds the visible grid from the status/sort pills and
// the search text. Caller holds the lock.
func (ls *LibraryScreen) applyFilters() {
	status := ls.filterBar.Filters[0].Value()
	sortBy := ls.filterBar.Filters[1].Value()
	query := strings.ToLower(ls.filterBar.SearchText())

	ls.filtered = ls.filtered[:0]
	for _, e := range ls.all {
		switch status {
		case "Watching", "Reading":
			if e.progress == 0 || (e.total() > 0 && e.progress >= e.total()) {
				continue
			}
		case "Finished":
			if e.total() == 0 || e.progress < e.total() {
				continue
			}
		case "Untouched":
			if e.progress != 0 {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(e.series.Title), query) {
			continue
		}
		ls.filtered = append(ls.filtered, e)
	}

	switch sortBy {
	case "Year":
		sort.SliceStable(ls.filtered, func(i, j int) bool {
			return ls.filtered[i].series.Year > ls.filtered[j].series.Year
		})
	case "Rating":
		sort.SliceStable(ls.filtered, func(i, j int) bool {
			return ls.filtered[i].rating > ls.filtered[j].rating
		})
	}

	ls.gridItems = make([]GridItem, len(ls.filtered))
	for i, e := range ls.filtered {
		item := GridItem{
			Slug:   e.series.Slug,
			Title:  e.series.Title,
			Rating: e.rating,
		}
		if e.series.Year > 0 {
			item.Subtitle = fmt.Sprintf("%d", e.series.Year)
		}
		if total := e.total(); total > 0 && e.progress > 0 {
			item.Progress = float64(e.progress) / float64(total)
		}
		if img := ls.imgCache.Get(e.series.CoverURL); img != nil {
			item.Image = img
		} else if e.series.CoverURL != "" {
			slug := e.series.Slug
			url := e.series.CoverURL
			ls.imgCache.LoadAsync(url, func(img *ebiten.Image) {
				ls.mu.Lock()
				defer ls.mu.Unlock()
				for j := range ls.gridItems {
					if ls.gridItems[j].Slug == slug {
						ls.gridItems[j].Image = img
						break
					}
				}
			})
		}
		ls.gridItems[i] = item
	}
	ls.grid.SetTotal(len(ls.gridItems))
}

// gridTop is the y of the first poster row, below title and filter bar.
func (ls *LibraryScreen) gridTop() float64 {
	return float64(NavBarHeight) + 10 + filterBarHeight + 16
}

func (ls *LibraryScreen) itemRect(i int) (x, y float64) {
	col := i % ls.grid.Cols
	row := i / ls.grid.Cols
	x = SectionPadding + float64(col)*(PosterWidth+PosterGap)
	y = ls.gridTop() - ls.scroll.ScrollY + float64(row)*GridRowHeight
	return
}

func (ls *LibraryScreen) Update() (*ScreenTransition, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	dir, enter, back := InputState()

	if back && !ls.filterBar.IsSearchFocused() {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	frame := CapturePointer()
	ls.scroll.HandleMouseWheel(frame.WheelY)

	mx, my, clicked := MouseJustClicked()
	if clicked {
		if ls.errDisplay.HandleClick(mx, my, ls.loadError) {
			return nil, nil
		}
		if idx, ok := ls.filterBar.HandleClick(mx, my); ok {
			ls.filterBar.Active = true
			ls.filterBar.FocusedIndex = idx
			if idx < len(ls.filterBar.Filters) {
				pill := &ls.filterBar.Filters[idx]
				pill.Selected = (pill.Selected + 1) % len(pill.Options)
				ls.applyFilters()
			}
			return nil, nil
		}
		for i := range ls.gridItems {
			x, y := ls.itemRect(i)
			if PointInRect(mx, my, x, y, PosterWidth, PosterHeight) {
				ls.grid.Focused = i
				ls.openFocused()
				return nil, nil
			}
		}
	}

	if !ls.loaded {
		return nil, nil
	}

	// Filter bar has keyboard focus until Down moves into the grid.
	if ls.filterBar.Active {
		if ls.filterBar.Update() {
			ls.applyFilters()
		}
		if inputRepeating(ebiten.KeyArrowDown) {
			ls.filterBar.Active = false
		}
		return nil, nil
	}

	if dir != DirNone {
		if !ls.grid.Update(dir) && dir == DirUp {
			ls.filterBar.Active = true
			return nil, nil
		}
		ls.ensureVisible()
	}

	if enter {
		ls.openFocused()
	}

	return nil, nil
}

// TextEntryActive reports whether the filter search box is capturing keys.
func (ls *LibraryScreen) TextEntryActive() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.filterBar.IsSearchFocused()
}

func (ls *LibraryScreen) openFocused() {
	idx := ls.grid.Focused
	if idx < len(ls.filtered) && ls.OnSeriesSelected != nil {
		ls.OnSeriesSelected(ls.filtered[idx].series.Slug)
	}
}

func (ls *LibraryScreen) ensureVisible() {
	row := ls.grid.FocusedRow()
	targetY := float64(row)*GridRowHeight - float64(ScreenHeight)/3
	if targetY < 0 {
		targetY = 0
	}
	ls.scroll.TargetScrollY = targetY
}

func (ls *LibraryScreen) Draw(dst *ebiten.Image) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.scroll.Animate()

	DrawText(dst, ls.title, SectionPadding, 16, FontSizeTitle, ColorText)
	if len(ls.filtered) > 0 {
		countStr := fmt.Sprintf("%d series", len(ls.filtered))
		DrawText(dst, countStr, float64(ScreenWidth)-200, 24, FontSizeSmall, ColorTextMuted)
	}

	if ls.loadError != "" && !ls.loaded {
		errX := float64(ScreenWidth)/2 - 300
		errY := float64(ScreenHeight)/2 - 20
		ls.errDisplay.Draw(dst, ls.loadError, errX, errY, FontSizeBody)
		DrawTextCentered(dst, "Press Esc to go back", float64(ScreenWidth)/2, float64(ScreenHeight)/2+20,
			FontSizeSmall, ColorTextMuted)
		return
	}

	if !ls.loaded {
		DrawTextCentered(dst, "Loading...", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	ls.filterBar.Draw(dst, SectionPadding, float64(NavBarHeight)+10)

	if len(ls.gridItems) == 0 {
		DrawTextCentered(dst, "No series match", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	for i, item := range ls.gridItems {
		x, y := ls.itemRect(i)
		if y+PosterHeight < ls.gridTop() || y > float64(ScreenHeight) {
			continue
		}
		drawPosterCard(dst, item, x, y, i == ls.grid.Focused)
	}
}
