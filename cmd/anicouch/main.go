package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"anicouch/assets/icon"
	"anicouch/internal/app"
	"anicouch/internal/cache"
	"anicouch/internal/config"
	"anicouch/internal/store"
	"anicouch/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "anicouch", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	// Open the library database
	if cfg.Library.DBPath == "" {
		if configDir, err := config.ConfigDir(); err == nil {
			cfg.Library.DBPath = filepath.Join(configDir, "library.db")
		} else {
			cfg.Library.DBPath = filepath.Join(os.TempDir(), "anicouch", "library.db")
		}
	}
	st, err := store.Open(cfg.Library.DBPath)
	if err != nil {
		log.Fatalf("Failed to open library: %v", err)
	}
	defer st.Close()

	game := app.NewGame(cfg, st, imgCache)
	sf := &screenFactory{game: game, cfg: cfg, imgCache: imgCache}
	game.OnSearchKey = func() { sf.pushSearch("") }

	// Create and wire the global navbar
	navbar := ui.NewNavBar()
	navbar.OnNavigate = func(action, kind string) {
		switch action {
		case "home":
			game.Screens.ClearStack()
			sf.pushHome()
		case "library":
			game.Screens.ClearStack()
			sf.pushHome()
			sf.pushLibrary(kind)
		case "settings":
			game.Screens.ClearStack()
			sf.pushHome()
			sf.pushSettings()
		}
	}
	navbar.OnSearch = func(query string) {
		game.Screens.ClearStack()
		sf.pushHome()
		sf.pushSearch(query)
	}
	game.Screens.NavBar = navbar

	sf.pushHome()

	// Hot-reload gesture tuning while the app runs
	if cfgPath, err := config.ConfigPath(); err == nil {
		stop, err := config.Watch(cfgPath, game.QueueTuning)
		if err != nil {
			log.Printf("Config watch disabled: %v", err)
		} else {
			defer stop()
		}
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("AniCouch")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
