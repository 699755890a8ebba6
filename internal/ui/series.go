package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"anicouch/internal/anilist"
	"anicouch/internal/cache"
	"anicouch/internal/config"
	"anicouch/internal/constants"
	"anicouch/internal/meta"
	"anicouch/internal/store"
)

// Focus sections on the series screen, top to bottom.
const (
	seriesFocusHero = iota
	seriesFocusGroups
	seriesFocusItems
	seriesFocusCharacters
)

// SeriesScreen shows one tracked series: hero with synopsis and rating,
// the episode or chapter navigator, the volume jump bar for manga, and
// the character strip.
type SeriesScreen struct {
	st       *store.Store
	client   *anilist.Client
	imgCache *cache.ImageCache
	tuning   config.Tuning

	slug     string
	series   store.Series
	itemKind string // store.KindEpisode or store.KindChapter
	rating   int
	progress int

	banner *ebiten.Image

	itemStrip   *Strip
	itemHyd     *meta.Hydrator
	lastItemWin VisibleWindow

	groups     []meta.Group
	groupRects []ButtonRect
	groupIndex int

	charStrip   *Strip
	charHyd     *meta.Hydrator
	lastCharWin VisibleWindow

	starRects [constants.MaxRating]ButtonRect

	focusMode int
	loaded    bool
	loadError string
	refreshed bool

	errDisplay ErrorDisplay
	mu         sync.Mutex
}

func NewSeriesScreen(st *store.Store, client *anilist.Client, imgCache *cache.ImageCache, tuning config.Tuning, slug string) *SeriesScreen {
	ss := &SeriesScreen{
		st:       st,
		client:   client,
		imgCache: imgCache,
		tuning:   tuning,
		slug:     slug,
	}

	ss.itemStrip = NewStrip(StripConfig{
		CardW:      EpisodeCardW,
		CardH:      EpisodeCardH,
		Gap:        EpisodeCardGap,
		Tuning:     tuning,
		OnActivate: ss.activateItem,
		DrawCard:   ss.drawItemCard,
	})
	ss.charStrip = NewStrip(StripConfig{
		CardW:    CharacterCardW,
		CardH:    CharacterCardH,
		Gap:      CharacterCardGap,
		Tuning:   tuning,
		DrawCard: ss.drawCharacterCard,
	})
	return ss
}

func (ss *SeriesScreen) Name() string { return "Series: " + ss.slug }

func (ss *SeriesScreen) OnEnter() {
	go ss.loadData()
}

func (ss *SeriesScreen) OnExit() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.itemStrip.CancelGesture()
	ss.charStrip.CancelGesture()
}

// SetTuning propagates hot-reloaded feel constants to both strips.
func (ss *SeriesScreen) SetTuning(t config.Tuning) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.tuning = t
	ss.itemStrip.SetTuning(t)
	ss.charStrip.SetTuning(t)
}

func (ss *SeriesScreen) loadData() {
	sr, err := ss.st.SeriesBySlug(ss.slug)
	if err != nil {
		log.Printf("Failed to load series %q: %v", ss.slug, err)
		ss.mu.Lock()
		ss.loadError = "Failed to load: " + err.Error()
		ss.mu.Unlock()
		return
	}

	itemKind := store.KindEpisode
	total := sr.EpisodeCount
	label := "Episode"
	fetch := meta.EpisodeFetch(ss.st, sr.ID)
	if sr.Kind == "manga" {
		itemKind = store.KindChapter
		total = sr.ChapterCount
		label = "Chapter"
		fetch = meta.ChapterFetch(ss.st, sr.ID)
	}

	progress, err := ss.st.Progress(sr.ID, itemKind)
	if err != nil {
		log.Printf("Failed to load progress: %v", err)
	}
	rating, err := ss.st.Rating(sr.ID)
	if err != nil {
		log.Printf("Failed to load rating: %v", err)
	}

	var groups []meta.Group
	if sr.Kind == "manga" {
		volumes, err := ss.st.VolumeMap(sr.ID)
		if err != nil {
			log.Printf("Failed to load volumes: %v", err)
		}
		groups = meta.BuildGroups(volumes, total, ss.tuning.FallbackChunk)
	}

	charCount, err := ss.st.CharacterCount(sr.ID)
	if err != nil {
		log.Printf("Failed to load character count: %v", err)
	}

	ss.mu.Lock()
	ss.series = sr
	ss.itemKind = itemKind
	ss.progress = progress
	ss.rating = rating
	ss.groups = groups
	ss.itemHyd = meta.NewHydrator(label, ss.tuning.HydrateBatch, fetch)
	ss.itemHyd.Reset(ss.slug)
	ss.charHyd = meta.NewHydrator("Character", ss.tuning.HydrateBatch, meta.CharacterFetch(ss.st, sr.ID))
	ss.charHyd.Reset(ss.slug)
	ss.itemStrip.SetCount(total)
	ss.itemStrip.SetMarked(progress - 1)
	ss.charStrip.SetCount(charCount)
	ss.lastItemWin = VisibleWindow{}
	ss.lastCharWin = VisibleWindow{}
	ss.loaded = true
	ss.loadError = ""
	ss.mu.Unlock()

	// Still-airing series and entries added before their counts were known
	// get their metadata refreshed from AniList once per visit.
	ss.mu.Lock()
	stale := !ss.refreshed && sr.AniListID > 0 && (total == 0 || sr.Status == "RELEASING")
	if stale {
		ss.refreshed = true
	}
	ss.mu.Unlock()
	if stale && ss.client != nil {
		go ss.refreshFromAniList(sr)
	}

	if sr.BannerURL != "" {
		ss.imgCache.LoadAsync(sr.BannerURL, func(img *ebiten.Image) {
			ss.mu.Lock()
			ss.banner = img
			ss.mu.Unlock()
		})
	} else if sr.CoverURL != "" {
		ss.imgCache.LoadAsync(sr.CoverURL, func(img *ebiten.Image) {
			ss.mu.Lock()
			ss.banner = img
			ss.mu.Unlock()
		})
	}
}

// refreshFromAniList re-fetches the remote entry and reloads the screen
// when counts or status may have moved on.
func (ss *SeriesScreen) refreshFromAniList(sr store.Series) {
	m, err := ss.client.MediaByID(sr.AniListID)
	if err != nil {
		log.Printf("Failed to refresh series from AniList: %v", err)
		return
	}
	updated := mediaToSeries(m)
	updated.Slug = sr.Slug // slug is the library identity, keep it stable
	if err := ss.st.UpsertSeries(&updated); err != nil {
		log.Printf("Failed to store refreshed series: %v", err)
		return
	}
	ss.loadData()
}

// hydrate loads metadata for a strip's visible card range, then starts
// the artwork downloads it revealed.
func (ss *SeriesScreen) hydrate(h *meta.Hydrator, first, last int) {
	if err := h.Ensure(ss.slug, first, last); err != nil {
		log.Printf("Hydration failed: %v", err)
		return
	}
	for n := first; n <= last; n++ {
		if m, ok := h.Get(n); ok && m.ImageURL != "" {
			ss.imgCache.LoadAsync(m.ImageURL, func(*ebiten.Image) {})
		}
	}
}

// layout positions, computed top to bottom.
func (ss *SeriesScreen) itemStripY() float64 {
	y := float64(HeroHeight) + SectionTitleH + 12
	if len(ss.groups) > 0 {
		y += GroupBarHeight + 8
	}
	return y
}

func (ss *SeriesScreen) charStripY() float64 {
	return ss.itemStripY() + EpisodeCardH + FontSizeSmall + 24 + SectionTitleH + 12
}

func (ss *SeriesScreen) stripViewW() float64 {
	return float64(ScreenWidth) - SectionPadding*2
}

func (ss *SeriesScreen) Update() (*ScreenTransition, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	dir, enter, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	if !ss.loaded {
		mx, my, clicked := MouseJustClicked()
		if clicked {
			ss.errDisplay.HandleClick(mx, my, ss.loadError)
		}
		return nil, nil
	}

	now := time.Now()
	frame := CapturePointer()

	// Pointer input goes to whichever strip is under the cursor; the other
	// still gets its animation step.
	ss.itemStrip.SetBounds(SectionPadding, ss.itemStripY(), ss.stripViewW())
	ss.charStrip.SetBounds(SectionPadding, ss.charStripY(), ss.stripViewW())
	itemFrame := frame
	if !ss.pointerOver(frame, ss.itemStripY(), EpisodeCardH) {
		itemFrame.WheelX, itemFrame.WheelY = 0, 0
		itemFrame.JustDown = false
	}
	charFrame := frame
	if !ss.pointerOver(frame, ss.charStripY(), CharacterCardH) {
		charFrame.WheelX, charFrame.WheelY = 0, 0
		charFrame.JustDown = false
	}
	ss.itemStrip.Update(now, itemFrame)
	ss.charStrip.Update(now, charFrame)
	ss.syncGroupIndex()
	ss.ensureWindows()

	// Mouse: rating stars and group bar
	mx, my, clicked := MouseJustClicked()
	if clicked {
		for i, rect := range ss.starRects {
			if PointInRect(mx, my, rect.X, rect.Y, rect.W, rect.H) {
				ss.setRating(i + 1)
				return nil, nil
			}
		}
		for i, rect := range ss.groupRects {
			if PointInRect(mx, my, rect.X, rect.Y, rect.W, rect.H) {
				ss.jumpToGroup(now, i)
				return nil, nil
			}
		}
	}

	switch ss.focusMode {
	case seriesFocusHero:
		switch dir {
		case DirUp:
			return &ScreenTransition{Type: TransitionFocusNavBar}, nil
		case DirDown:
			ss.focusMode = ss.sectionBelowHero()
		case DirLeft:
			ss.setRating(max(ss.rating-1, 0))
		case DirRight:
			ss.setRating(min(ss.rating+1, constants.MaxRating))
		}

	case seriesFocusGroups:
		switch dir {
		case DirUp:
			ss.focusMode = seriesFocusHero
		case DirDown:
			ss.focusMode = seriesFocusItems
		case DirLeft:
			if ss.groupIndex > 0 {
				ss.jumpToGroup(now, ss.groupIndex-1)
			}
		case DirRight:
			if ss.groupIndex < len(ss.groups)-1 {
				ss.jumpToGroup(now, ss.groupIndex+1)
			}
		}
		if enter {
			ss.jumpToGroup(now, ss.groupIndex)
		}

	case seriesFocusItems:
		switch dir {
		case DirUp:
			if len(ss.groups) > 0 {
				ss.focusMode = seriesFocusGroups
			} else {
				ss.focusMode = seriesFocusHero
			}
		case DirDown:
			if ss.charStrip.Count() > 0 {
				ss.focusMode = seriesFocusCharacters
			}
		case DirLeft, DirRight:
			ss.itemStrip.Nudge(now, dir)
		}
		if enter {
			ss.itemStrip.Activate()
		}

	case seriesFocusCharacters:
		switch dir {
		case DirUp:
			ss.focusMode = seriesFocusItems
		case DirLeft, DirRight:
			ss.charStrip.Nudge(now, dir)
		}
	}

	return nil, nil
}

func (ss *SeriesScreen) pointerOver(frame PointerFrame, top, cardH float64) bool {
	return frame.Y >= top && frame.Y <= top+cardH &&
		frame.X >= SectionPadding && frame.X <= SectionPadding+ss.stripViewW()
}

func (ss *SeriesScreen) sectionBelowHero() int {
	if len(ss.groups) > 0 {
		return seriesFocusGroups
	}
	if ss.itemStrip.Count() > 0 {
		return seriesFocusItems
	}
	if ss.charStrip.Count() > 0 {
		return seriesFocusCharacters
	}
	return seriesFocusHero
}

// ensureWindows hydrates metadata for newly revealed cards.
func (ss *SeriesScreen) ensureWindows() {
	if win, ok := ss.itemStrip.Window(); ok && win != ss.lastItemWin {
		ss.lastItemWin = win
		go ss.hydrate(ss.itemHyd, win.Start+1, win.End+1)
	}
	if win, ok := ss.charStrip.Window(); ok && win != ss.lastCharWin {
		ss.lastCharWin = win
		go ss.hydrate(ss.charHyd, win.Start+1, win.End+1)
	}
}

// syncGroupIndex keeps the highlighted group in step with the strip.
func (ss *SeriesScreen) syncGroupIndex() {
	if len(ss.groups) == 0 {
		return
	}
	number := ss.itemStrip.Focused() + 1
	for i, g := range ss.groups {
		if len(g.Chapters) == 0 {
			continue
		}
		if number >= g.Chapters[0] && number <= g.Chapters[len(g.Chapters)-1] {
			ss.groupIndex = i
			return
		}
	}
}

func (ss *SeriesScreen) jumpToGroup(now time.Time, i int) {
	if i < 0 || i >= len(ss.groups) {
		return
	}
	ss.groupIndex = i
	ss.focusMode = seriesFocusGroups
	first := ss.groups[i].First()
	if first > 0 {
		ss.itemStrip.ScrollToIndex(now, first-1)
	}
}

// activateItem records the tapped episode or chapter as finished.
func (ss *SeriesScreen) activateItem(index int) {
	number := index + 1
	go func() {
		if err := ss.st.SetProgress(ss.series.ID, ss.itemKind, number); err != nil {
			log.Printf("Failed to record progress: %v", err)
		}
	}()
	if number > ss.progress {
		ss.progress = number
	}
	ss.itemStrip.SetMarked(ss.progress - 1)
}

// MarkNextWatched advances the continue pointer by one (keybind).
func (ss *SeriesScreen) MarkNextWatched() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if !ss.loaded {
		return
	}
	total := ss.itemStrip.Count()
	if ss.progress >= total {
		return
	}
	ss.activateItem(ss.progress) // progress is the 0-based index of the next item
}

// AdjustRating bumps the user score by delta (keybind).
func (ss *SeriesScreen) AdjustRating(delta int) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if !ss.loaded {
		return
	}
	ss.setRating(ClampInt(ss.rating+delta, 0, constants.MaxRating))
}

func (ss *SeriesScreen) setRating(score int) {
	if score == ss.rating {
		return
	}
	ss.rating = score
	id := ss.series.ID
	go func() {
		if err := ss.st.SetRating(id, score); err != nil {
			log.Printf("Failed to store rating: %v", err)
		}
	}()
}

// DebugLines reports strip state for the debug overlay.
func (ss *SeriesScreen) DebugLines() []string {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if !ss.loaded {
		return nil
	}
	win, _ := ss.itemStrip.Window()
	return []string{
		fmt.Sprintf("items: scroll=%.1f focused=%d settling=%v dragging=%v",
			ss.itemStrip.ScrollLeft(), ss.itemStrip.Focused(), ss.itemStrip.Settling(), ss.itemStrip.Dragging()),
		fmt.Sprintf("window: [%d, %d] spacers %.0f/%.0f", win.Start, win.End, win.LeftSpacerPx, win.RightSpacerPx),
	}
}

func (ss *SeriesScreen) drawItemCard(dst *ebiten.Image, index int, x, y float64, focused bool) {
	number := index + 1
	m, hydrated := ss.itemHyd.Get(number)

	var img *ebiten.Image
	if hydrated && m.ImageURL != "" {
		img = ss.imgCache.Get(m.ImageURL)
	}
	if img != nil {
		DrawImageCover(dst, img, x, y, EpisodeCardW, EpisodeCardH)
	} else {
		vector.DrawFilledRect(dst, float32(x), float32(y), EpisodeCardW, EpisodeCardH, ColorSurface, false)
		DrawTextCentered(dst, fmt.Sprintf("%d", number), x+EpisodeCardW/2, y+EpisodeCardH/2,
			FontSizeHeading, ColorTextMuted)
	}

	// Watched shade over finished items
	if number <= ss.progress {
		vector.DrawFilledRect(dst, float32(x), float32(y), EpisodeCardW, EpisodeCardH, ColorOverlay, false)
		drawCheckIcon(dst, float32(x+EpisodeCardW-16), float32(y+16), 7, ColorSuccess)
	}

	title := fmt.Sprintf("%d", number)
	if hydrated {
		title = m.Title
	}
	titleColor := ColorTextSecondary
	if focused {
		titleColor = ColorText
	}
	DrawText(dst, truncateText(title, EpisodeCardW, FontSizeSmall), x, y+EpisodeCardH+4, FontSizeSmall, titleColor)
}

func (ss *SeriesScreen) drawCharacterCard(dst *ebiten.Image, index int, x, y float64, focused bool) {
	number := index + 1
	m, hydrated := ss.charHyd.Get(number)

	var img *ebiten.Image
	if hydrated && m.ImageURL != "" {
		img = ss.imgCache.Get(m.ImageURL)
	}
	if img != nil {
		DrawImageCover(dst, img, x, y, CharacterCardW, CharacterCardH)
	} else {
		vector.DrawFilledRect(dst, float32(x), float32(y), CharacterCardW, CharacterCardH, ColorSurface, false)
	}

	name := ""
	if hydrated {
		name = m.Title
	}
	titleColor := ColorTextSecondary
	if focused {
		titleColor = ColorText
	}
	DrawText(dst, truncateText(name, CharacterCardW, FontSizeSmall), x, y+CharacterCardH+4, FontSizeSmall, titleColor)
}

func (ss *SeriesScreen) Draw(dst *ebiten.Image) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.loadError != "" {
		errX := float64(ScreenWidth)/2 - 300
		errY := float64(ScreenHeight)/2 - 20
		ss.errDisplay.Draw(dst, ss.loadError, errX, errY, FontSizeBody)
		return
	}
	if !ss.loaded {
		DrawTextCentered(dst, "Loading...", float64(ScreenWidth)/2, float64(ScreenHeight)/2,
			FontSizeHeading, ColorTextSecondary)
		return
	}

	ss.drawHero(dst)

	// Section title for the navigator
	sectionTitle := "Episodes"
	if ss.itemKind == store.KindChapter {
		sectionTitle = "Chapters"
	}
	y := float64(HeroHeight) + 8
	DrawText(dst, sectionTitle, SectionPadding, y, FontSizeHeading, ColorText)
	progressStr := fmt.Sprintf("%d / %d", ss.progress, ss.itemStrip.Count())
	DrawText(dst, progressStr, float64(ScreenWidth)-SectionPadding-120, y+6, FontSizeSmall, ColorTextMuted)

	if len(ss.groups) > 0 {
		ss.drawGroupBar(dst, y+SectionTitleH)
	}

	ss.itemStrip.SetBounds(SectionPadding, ss.itemStripY(), ss.stripViewW())
	ss.itemStrip.Draw(dst, ss.focusMode == seriesFocusItems)

	if ss.charStrip.Count() > 0 {
		charTitleY := ss.charStripY() - SectionTitleH - 12
		DrawText(dst, "Characters", SectionPadding, charTitleY, FontSizeHeading, ColorText)
		ss.charStrip.SetBounds(SectionPadding, ss.charStripY(), ss.stripViewW())
		ss.charStrip.Draw(dst, ss.focusMode == seriesFocusCharacters)
	}
}

func (ss *SeriesScreen) drawHero(dst *ebiten.Image) {
	sw := float64(ScreenWidth)

	if ss.banner != nil {
		DrawImageCover(dst, ss.banner, 0, 0, sw, HeroHeight)
	} else {
		vector.DrawFilledRect(dst, 0, 0, float32(sw), HeroHeight, ColorSurface, false)
	}
	// Darken for text legibility
	vector.DrawFilledRect(dst, 0, 0, float32(sw), HeroHeight, ColorOverlay, false)

	y := float64(NavBarHeight) + 24
	DrawText(dst, ss.series.Title, SectionPadding, y, FontSizeTitle, ColorText)
	y += FontSizeTitle + 10

	info := ""
	if ss.series.Year > 0 {
		info = fmt.Sprintf("%d", ss.series.Year)
	}
	if ss.series.Status != "" {
		if info != "" {
			info += "  ·  "
		}
		info += ss.series.Status
	}
	if info != "" {
		DrawText(dst, info, SectionPadding, y, FontSizeBody, ColorTextSecondary)
		y += FontSizeBody + 12
	}

	if ss.series.Synopsis != "" {
		maxW := sw - SectionPadding*2 - 500
		h := DrawTextWrapped(dst, truncateText(ss.series.Synopsis, maxW*3, FontSizeBody),
			SectionPadding, y, maxW, FontSizeBody, ColorTextSecondary)
		y += h + 12
	}

	// Rating stars, clickable and driven by Left/Right in hero focus
	starR := float32(10)
	starGap := 26.0
	sy := float64(HeroHeight) - 40
	for i := 0; i < constants.MaxRating; i++ {
		sx := SectionPadding + 12 + float64(i)*starGap
		filled := i < ss.rating
		clr := ColorTextMuted
		if filled {
			clr = ColorRatingGold
		}
		drawStarIcon(dst, float32(sx), float32(sy), starR, filled, clr)
		ss.starRects[i] = ButtonRect{X: sx - 12, Y: sy - 12, W: 24, H: 24}
	}
	if ss.focusMode == seriesFocusHero {
		label := "Left/Right to rate"
		if ss.rating > 0 {
			label = fmt.Sprintf("%d/%d", ss.rating, constants.MaxRating)
		}
		DrawText(dst, label, SectionPadding+12+float64(constants.MaxRating)*starGap+8, sy-8,
			FontSizeSmall, ColorTextSecondary)
	}
}

func (ss *SeriesScreen) drawGroupBar(dst *ebiten.Image, y float64) {
	if len(ss.groupRects) != len(ss.groups) {
		ss.groupRects = make([]ButtonRect, len(ss.groups))
	}
	tabX := float64(SectionPadding)
	for i, g := range ss.groups {
		label := g.LabelTop
		if g.LabelBottom != "" {
			label += " · " + g.LabelBottom
		}
		w, _ := MeasureText(label, FontSizeSmall)
		tabW := w + 20

		focused := ss.focusMode == seriesFocusGroups && i == ss.groupIndex
		current := i == ss.groupIndex

		switch {
		case focused:
			vector.DrawFilledRect(dst, float32(tabX), float32(y), float32(tabW), GroupBarHeight-12, ColorPrimary, false)
			DrawTextCentered(dst, label, tabX+tabW/2, y+(GroupBarHeight-12)/2, FontSizeSmall, ColorBackground)
		case current:
			vector.DrawFilledRect(dst, float32(tabX), float32(y), float32(tabW), GroupBarHeight-12, ColorSurfaceHover, false)
			vector.StrokeRect(dst, float32(tabX), float32(y), float32(tabW), GroupBarHeight-12, 1, ColorPrimary, false)
			DrawTextCentered(dst, label, tabX+tabW/2, y+(GroupBarHeight-12)/2, FontSizeSmall, ColorText)
		default:
			vector.DrawFilledRect(dst, float32(tabX), float32(y), float32(tabW), GroupBarHeight-12, ColorSurface, false)
			DrawTextCentered(dst, label, tabX+tabW/2, y+(GroupBarHeight-12)/2, FontSizeSmall, ColorTextSecondary)
		}

		ss.groupRects[i] = ButtonRect{X: tabX, Y: y, W: tabW, H: GroupBarHeight - 12}
		tabX += tabW + 10
	}
}
