package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"anicouch/internal/cache"
	"anicouch/internal/config"
	"anicouch/internal/store"
)

// homeRow is one carousel on the home screen.
type homeRow struct {
	title string
	items []GridItem
	strip *Strip
}

// HomeScreen shows the tracker's front page: Continue Watching,
// Continue Reading, and Recently Rated carousels.
type HomeScreen struct {
	st       *store.Store
	imgCache *cache.ImageCache
	tuning   config.Tuning

	rows     []*homeRow
	rowIndex int
	loaded   bool
	loading  bool
	scroll   ScrollState

	// OnSeriesSelected opens the series screen for the given slug.
	OnSeriesSelected func(slug string)

	mu sync.Mutex
}

func NewHomeScreen(st *store.Store, imgCache *cache.ImageCache, tuning config.Tuning) *HomeScreen {
	return &HomeScreen{
		st:       st,
		imgCache: imgCache,
		tuning:   tuning,
	}
}

func (hs *HomeScreen) Name() string { return "Home" }

func (hs *HomeScreen) OnEnter() {
	// Progress and ratings change while browsing, so reload every entry.
	if !hs.loading {
		hs.loading = true
		go hs.loadData()
	}
}

func (hs *HomeScreen) OnExit() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	for _, row := range hs.rows {
		row.strip.CancelGesture()
	}
}

// SetTuning propagates hot-reloaded feel constants to the carousels.
func (hs *HomeScreen) SetTuning(t config.Tuning) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.tuning = t
	for _, row := range hs.rows {
		row.strip.SetTuning(t)
	}
}

func (hs *HomeScreen) loadData() {
	var rows []*homeRow

	continues, err := hs.st.ContinueList(20)
	if err != nil {
		log.Printf("Failed to load continue list: %v", err)
	}
	var watching, reading []store.ContinueEntry
	for _, e := range continues {
		if e.Kind == store.KindEpisode {
			watching = append(watching, e)
		} else {
			reading = append(reading, e)
		}
	}
	if len(watching) > 0 {
		items := make([]GridItem, len(watching))
		for i, e := range watching {
			items[i] = hs.continueItem(e, fmt.Sprintf("Ep %d of %d", e.Next, e.Series.EpisodeCount))
		}
		rows = append(rows, hs.newRow("Continue Watching", items))
	}
	if len(reading) > 0 {
		items := make([]GridItem, len(reading))
		for i, e := range reading {
			items[i] = hs.continueItem(e, fmt.Sprintf("Ch %d of %d", e.Next, e.Series.ChapterCount))
		}
		rows = append(rows, hs.newRow("Continue Reading", items))
	}

	rated, err := hs.st.RecentRatings(20)
	if err != nil {
		log.Printf("Failed to load ratings: %v", err)
	}
	if len(rated) > 0 {
		items := make([]GridItem, len(rated))
		for i, e := range rated {
			items[i] = GridItem{
				Slug:   e.Series.Slug,
				Title:  e.Series.Title,
				Rating: e.Score,
			}
			if img := hs.imgCache.Get(e.Series.CoverURL); img != nil {
				items[i].Image = img
			}
		}
		rows = append(rows, hs.newRow("Recently Rated", items))
	}

	hs.mu.Lock()
	hs.rows = rows
	if hs.rowIndex >= len(rows) {
		hs.rowIndex = 0
	}
	hs.loaded = true
	hs.loading = false
	hs.mu.Unlock()
}

func (hs *HomeScreen) continueItem(e store.ContinueEntry, subtitle string) GridItem {
	item := GridItem{
		Slug:     e.Series.Slug,
		Title:    e.Series.Title,
		Subtitle: subtitle,
	}
	total := e.Series.EpisodeCount
	if e.Kind == store.KindChapter {
		total = e.Series.ChapterCount
	}
	if total > 0 {
		item.Progress = float64(e.Next-1) / float64(total)
	}
	if img := hs.imgCache.Get(e.Series.CoverURL); img != nil {
		item.Image = img
	}
	return item
}

func (hs *HomeScreen) newRow(title string, items []GridItem) *homeRow {
	row := &homeRow{title: title, items: items}
	row.strip = NewStrip(StripConfig{
		CardW:  PosterWidth,
		CardH:  PosterHeight,
		Gap:    PosterGap,
		Tuning: hs.tuning,
		OnActivate: func(index int) {
			hs.openItem(row, index)
		},
		DrawCard: func(dst *ebiten.Image, index int, x, y float64, focused bool) {
			if index < len(row.items) {
				drawPosterContent(dst, row.items[index], x, y, focused)
			}
		},
	})
	row.strip.SetCount(len(items))

	// Kick off poster loads for anything still missing.
	for i := range items {
		if items[i].Image == nil {
			idx := i
			slug := items[i].Slug
			go hs.fetchPoster(row, idx, slug)
		}
	}
	return row
}

func (hs *HomeScreen) fetchPoster(row *homeRow, idx int, slug string) {
	sr, err := hs.st.SeriesBySlug(slug)
	if err != nil || sr.CoverURL == "" {
		return
	}
	hs.imgCache.LoadAsync(sr.CoverURL, func(img *ebiten.Image) {
		hs.mu.Lock()
		defer hs.mu.Unlock()
		if idx < len(row.items) {
			row.items[idx].Image = img
		}
	})
}

func (hs *HomeScreen) openItem(row *homeRow, index int) {
	if index < 0 || index >= len(row.items) {
		return
	}
	if hs.OnSeriesSelected != nil {
		hs.OnSeriesSelected(row.items[index].Slug)
	}
}

// rowY returns the strip's card top for row i at the current scroll.
func (hs *HomeScreen) rowY(i int) float64 {
	base := float64(NavBarHeight+10) - hs.scroll.ScrollY
	return base + float64(i)*SectionFullHeight + SectionTitleH + PosterFocusPad
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if !hs.loaded || len(hs.rows) == 0 {
		return nil, nil
	}

	now := time.Now()
	frame := CapturePointer()

	// Pointer input goes to whichever strip is under the cursor; the rest
	// still get their animation step.
	hovering := false
	viewW := float64(ScreenWidth) - SectionPadding*2
	for i, row := range hs.rows {
		row.strip.SetBounds(SectionPadding, hs.rowY(i), viewW)
		rowFrame := frame
		over := frame.Y >= hs.rowY(i) && frame.Y <= hs.rowY(i)+PosterHeight &&
			frame.X >= SectionPadding && frame.X <= SectionPadding+viewW
		if over {
			hovering = true
			if frame.JustDown {
				hs.rowIndex = i
			}
		} else {
			rowFrame.WheelX, rowFrame.WheelY = 0, 0
			rowFrame.JustDown = false
		}
		row.strip.Update(now, rowFrame)
	}

	// Vertical wheel scrolls the page when no strip claims it.
	if !hovering {
		hs.scroll.HandleMouseWheel(frame.WheelY)
	}

	dir, enter, _ := InputState()
	current := hs.rows[hs.rowIndex]

	switch dir {
	case DirUp:
		if hs.rowIndex > 0 {
			hs.rowIndex--
			hs.scroll.EnsureSectionVisible(hs.rowIndex, float64(NavBarHeight+10), float64(ScreenHeight))
		} else {
			return &ScreenTransition{Type: TransitionFocusNavBar}, nil
		}
	case DirDown:
		if hs.rowIndex < len(hs.rows)-1 {
			hs.rowIndex++
			hs.scroll.EnsureSectionVisible(hs.rowIndex, float64(NavBarHeight+10), float64(ScreenHeight))
		}
	case DirLeft, DirRight:
		current.strip.Nudge(now, dir)
	}

	if enter {
		current.strip.Activate()
	}

	return nil, nil
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.scroll.Animate()

	if !hs.loaded {
		DrawTextCentered(dst, "Loading...", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	if len(hs.rows) == 0 {
		DrawTextCentered(dst, "Nothing tracked yet. Search to add a series",
			float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	viewW := float64(ScreenWidth) - SectionPadding*2
	base := float64(NavBarHeight+10) - hs.scroll.ScrollY
	for i, row := range hs.rows {
		rowTop := base + float64(i)*SectionFullHeight
		if rowTop+SectionFullHeight < 0 || rowTop > float64(ScreenHeight) {
			continue
		}
		DrawText(dst, row.title, SectionPadding, rowTop, FontSizeHeading, ColorText)
		row.strip.SetBounds(SectionPadding, hs.rowY(i), viewW)
		row.strip.Draw(dst, i == hs.rowIndex)
	}
}
