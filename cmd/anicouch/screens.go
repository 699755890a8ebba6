package main

import (
	"anicouch/internal/app"
	"anicouch/internal/cache"
	"anicouch/internal/config"
	"anicouch/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	imgCache *cache.ImageCache
}

func (sf *screenFactory) pushHome() {
	home := ui.NewHomeScreen(sf.game.Store, sf.imgCache, sf.cfg.Tuning)
	home.OnSeriesSelected = func(slug string) {
		sf.pushSeries(slug)
	}
	sf.game.Screens.Replace(home)
}

func (sf *screenFactory) pushSeries(slug string) {
	series := ui.NewSeriesScreen(sf.game.Store, sf.game.AniList, sf.imgCache, sf.cfg.Tuning, slug)
	sf.game.Screens.Push(series)
}

func (sf *screenFactory) pushLibrary(kind string) {
	lib := ui.NewLibraryScreen(sf.game.Store, sf.imgCache, kind)
	lib.OnSeriesSelected = func(slug string) {
		sf.pushSeries(slug)
	}
	sf.game.Screens.Push(lib)
}

func (sf *screenFactory) pushSearch(query string) {
	search := ui.NewSearchScreen(sf.game.AniList, sf.game.Store, sf.imgCache, query)
	search.OnSeriesSelected = func(slug string) {
		sf.pushSeries(slug)
	}
	sf.game.Screens.Push(search)
}

func (sf *screenFactory) pushSettings() {
	settings := ui.NewSettingsScreen(sf.cfg, sf.imgCache)
	settings.OnTokenChanged = func(token string) {
		sf.game.SetToken(token)
	}
	sf.game.Screens.Push(settings)
}
