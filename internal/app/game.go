package app

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"anicouch/internal/anilist"
	"anicouch/internal/cache"
	"anicouch/internal/config"
	"anicouch/internal/store"
	"anicouch/internal/ui"
)

// Game implements ebiten.Game and holds the shared app dependencies.
type Game struct {
	Config  *config.Config
	Store   *store.Store
	AniList *anilist.Client
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager

	Width, Height int

	// OnSearchKey opens the search screen when the search keybind fires.
	OnSearchKey func()

	mu            sync.Mutex
	pendingTuning *config.Tuning
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, st *store.Store, imgCache *cache.ImageCache) *Game {
	g := &Game{
		Config:  cfg,
		Store:   st,
		AniList: anilist.NewClient(cfg.AniList.Token),
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
	ui.DebugLinesFn = func() []string {
		if ss, ok := g.Screens.Current().(*ui.SeriesScreen); ok {
			return ss.DebugLines()
		}
		return nil
	}
	return g
}

// SetToken rebuilds the AniList client after the token changed in settings.
func (g *Game) SetToken(token string) {
	g.AniList = anilist.NewClient(token)
}

// QueueTuning stores hot-reloaded feel constants for the next frame. Safe
// to call from the config watcher goroutine.
func (g *Game) QueueTuning(t config.Tuning) {
	g.mu.Lock()
	g.pendingTuning = &t
	g.mu.Unlock()
}

// tuner is implemented by screens that host gesture strips.
type tuner interface {
	SetTuning(config.Tuning)
}

func (g *Game) applyPendingTuning() {
	g.mu.Lock()
	t := g.pendingTuning
	g.pendingTuning = nil
	g.mu.Unlock()
	if t == nil {
		return
	}
	g.Config.Tuning = *t
	if s, ok := g.Screens.Current().(tuner); ok {
		s.SetTuning(*t)
	}
}

// textEntry is implemented by screens with a focusable text field; global
// keybinds are suppressed while one is being typed into.
type textEntry interface {
	TextEntryActive() bool
}

func (g *Game) textEntryActive() bool {
	if nb := g.Screens.NavBar; nb != nil && nb.Active {
		return true
	}
	if s, ok := g.Screens.Current().(textEntry); ok {
		return s.TextEntryActive()
	}
	return false
}

func (g *Game) Update() error {
	g.applyPendingTuning()

	// Alt+Enter toggles fullscreen regardless of focus
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if !g.textEntryActive() {
		g.handleKeybinds()
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) handleKeybinds() {
	kb := &g.Config.Keybinds

	if keyJustPressed(kb.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if keyJustPressed(kb.Search) && g.OnSearchKey != nil {
		g.OnSearchKey()
	}

	// Series-screen shortcuts
	if ss, ok := g.Screens.Current().(*ui.SeriesScreen); ok {
		if keyJustPressed(kb.MarkWatched) {
			ss.MarkNextWatched()
		}
		if keyJustPressed(kb.RateUp) {
			ss.AdjustRating(1)
		}
		if keyJustPressed(kb.RateDown) {
			ss.AdjustRating(-1)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
