package ui

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"anicouch/internal/anilist"
	"anicouch/internal/cache"
	"anicouch/internal/store"
)

// SearchScreen shows AniList results for a query, or trending titles when
// the query is empty. Activating a result adds it to the local library and
// opens its series screen.
type SearchScreen struct {
	client   *anilist.Client
	st       *store.Store
	imgCache *cache.ImageCache

	query     string
	results   []anilist.Media
	gridItems []GridItem
	grid      *FocusGrid

	page     int
	lastPage bool

	loaded    bool
	loading   bool
	loadError string
	scroll    ScrollState

	OnSeriesSelected func(slug string)

	errDisplay ErrorDisplay
	mu         sync.Mutex
}

func NewSearchScreen(client *anilist.Client, st *store.Store, imgCache *cache.ImageCache, query string) *SearchScreen {
	cols := (ScreenWidth - SectionPadding*2) / (PosterWidth + PosterGap)
	return &SearchScreen{
		client: client,
		st:     st,
		imgCache: imgCache,
		query:  strings.TrimSpace(query),
		grid:   NewFocusGrid(cols, 0),
	}
}

func (cs *SearchScreen) Name() string {
	if cs.query == "" {
		return "Trending"
	}
	return "Search: " + cs.query
}

func (cs *SearchScreen) OnEnter() {
	cs.mu.Lock()
	start := !cs.loaded && !cs.loading
	if start {
		cs.loading = true
	}
	cs.mu.Unlock()
	if start {
		go cs.loadPage(1)
	}
}

func (cs *SearchScreen) OnExit() {}

func (cs *SearchScreen) loadPage(page int) {
	var (
		results []anilist.Media
		err     error
	)
	if cs.query == "" {
		results, err = cs.client.Trending(page)
	} else {
		results, err = cs.client.Search(cs.query, page)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.loading = false
	if err != nil {
		log.Printf("Failed to search AniList: %v", err)
		if !cs.loaded {
			cs.loadError = "Search failed: " + err.Error()
		}
		return
	}

	if page <= 1 {
		cs.results = results
	} else {
		cs.results = append(cs.results, results...)
	}
	cs.page = page
	cs.lastPage = len(results) == 0
	cs.loaded = true
	cs.loadError = ""
	cs.rebuildGrid()
}

// rebuildGrid maps results to poster cards. Caller holds the lock.
func (cs *SearchScreen) rebuildGrid() {
	cs.gridItems = make([]GridItem, len(cs.results))
	for i := range cs.results {
		m := &cs.results[i]
		item := GridItem{
			Slug:     m.Slug(),
			Title:    m.DisplayTitle(),
			Subtitle: mediaSubtitle(m),
		}
		url := m.CoverURL()
		if img := cs.imgCache.Get(url); img != nil {
			item.Image = img
		} else if url != "" {
			slug := item.Slug
			cs.imgCache.LoadAsync(url, func(img *ebiten.Image) {
				cs.mu.Lock()
				defer cs.mu.Unlock()
				for j := range cs.gridItems {
					if cs.gridItems[j].Slug == slug {
						cs.gridItems[j].Image = img
						break
					}
				}
			})
		}
		cs.gridItems[i] = item
	}
	cs.grid.SetTotal(len(cs.gridItems))
}

func mediaSubtitle(m *anilist.Media) string {
	kind := "Anime"
	if m.IsManga() {
		kind = "Manga"
	}
	if m.SeasonYear > 0 {
		return fmt.Sprintf("%s · %d", kind, m.SeasonYear)
	}
	return kind
}

func (cs *SearchScreen) gridTop() float64 {
	return float64(NavBarHeight) + 10 + SectionTitleH + 8
}

func (cs *SearchScreen) itemRect(i int) (x, y float64) {
	col := i % cs.grid.Cols
	row := i / cs.grid.Cols
	x = SectionPadding + float64(col)*(PosterWidth+PosterGap)
	y = cs.gridTop() - cs.scroll.ScrollY + float64(row)*GridRowHeight
	return
}

func (cs *SearchScreen) Update() (*ScreenTransition, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	dir, enter, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	frame := CapturePointer()
	cs.scroll.HandleMouseWheel(frame.WheelY)

	mx, my, clicked := MouseJustClicked()
	if clicked {
		if cs.errDisplay.HandleClick(mx, my, cs.loadError) {
			return nil, nil
		}
		for i := range cs.gridItems {
			x, y := cs.itemRect(i)
			if PointInRect(mx, my, x, y, PosterWidth, PosterHeight) {
				cs.grid.Focused = i
				cs.addFocused()
				return nil, nil
			}
		}
	}

	if !cs.loaded {
		return nil, nil
	}

	if dir != DirNone {
		if !cs.grid.Update(dir) && dir == DirUp {
			return &ScreenTransition{Type: TransitionFocusNavBar}, nil
		}
		cs.ensureVisible()
		cs.maybeLoadMore()
	}

	if enter {
		cs.addFocused()
	}

	return nil, nil
}

// maybeLoadMore fetches the next result page once focus reaches the final
// row. Caller holds the lock.
func (cs *SearchScreen) maybeLoadMore() {
	if cs.loading || cs.lastPage {
		return
	}
	lastRow := (len(cs.gridItems) - 1) / cs.grid.Cols
	if cs.grid.FocusedRow() < lastRow {
		return
	}
	cs.loading = true
	go cs.loadPage(cs.page + 1)
}

// addFocused upserts the focused result into the library and opens it.
// Caller holds the lock.
func (cs *SearchScreen) addFocused() {
	idx := cs.grid.Focused
	if idx >= len(cs.results) {
		return
	}
	sr := mediaToSeries(&cs.results[idx])
	if err := cs.st.UpsertSeries(&sr); err != nil {
		log.Printf("Failed to add series: %v", err)
		cs.loadError = "Failed to add: " + err.Error()
		return
	}
	if cs.OnSeriesSelected != nil {
		cs.OnSeriesSelected(sr.Slug)
	}
}

// mediaToSeries maps an AniList entry onto a library row.
func mediaToSeries(m *anilist.Media) store.Series {
	kind := "anime"
	if m.IsManga() {
		kind = "manga"
	}
	return store.Series{
		Slug:         m.Slug(),
		Title:        m.DisplayTitle(),
		Kind:         kind,
		Synopsis:     m.PlainDescription(),
		Year:         m.SeasonYear,
		Status:       m.Status,
		EpisodeCount: m.Episodes,
		ChapterCount: m.Chapters,
		CoverURL:     m.CoverURL(),
		BannerURL:    m.BannerImage,
		AniListID:    m.ID,
	}
}

func (cs *SearchScreen) ensureVisible() {
	row := cs.grid.FocusedRow()
	targetY := float64(row)*GridRowHeight - float64(ScreenHeight)/3
	if targetY < 0 {
		targetY = 0
	}
	cs.scroll.TargetScrollY = targetY
}

func (cs *SearchScreen) Draw(dst *ebiten.Image) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.scroll.Animate()

	title := "Trending now"
	if cs.query != "" {
		title = fmt.Sprintf("Results for %q", cs.query)
	}
	DrawText(dst, title, SectionPadding, float64(NavBarHeight)+10, FontSizeTitle, ColorText)

	if cs.loadError != "" && !cs.loaded {
		errX := float64(ScreenWidth)/2 - 300
		errY := float64(ScreenHeight)/2 - 20
		cs.errDisplay.Draw(dst, cs.loadError, errX, errY, FontSizeBody)
		return
	}

	if !cs.loaded {
		DrawTextCentered(dst, "Searching...", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	if len(cs.gridItems) == 0 {
		DrawTextCentered(dst, "No results", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	for i, item := range cs.gridItems {
		x, y := cs.itemRect(i)
		if y+PosterHeight < cs.gridTop() || y > float64(ScreenHeight) {
			continue
		}
		drawPosterCard(dst, item, x, y, i == cs.grid.Focused)
	}

	if cs.loading {
		DrawTextCentered(dst, "Loading more...", float64(ScreenWidth)/2, float64(ScreenHeight)-30,
			FontSizeSmall, ColorTextMuted)
	}
}
