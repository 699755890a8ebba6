package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the [tuning] section whenever the config file changes on
// disk and delivers the result via onReload. This allows adjusting the
// scroll feel constants while the app is running.
//
// Only tuning is hot-reloaded; window size, library path, and keybinds
// require a restart. Returns a stop function.
func Watch(path string, onReload func(Tuning)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors typically replace the
	// file via rename, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				cfg, err := LoadFrom(path)
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				onReload(cfg.Tuning)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watch error: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
