package config

import (
	"fmt"
	"path/filepath"

	"bench3d/pkg/logger"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the tuning file whenever it changes on disk and hands the
// parsed result to the callback. A file that fails to parse is logged and
// skipped; the previous config stays in effect.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path. The callback runs on the watcher goroutine;
// callers hand the new config to the game loop themselves (a channel or an
// atomic pointer).
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	// Watch the directory: editors often replace the file on save, which
	// drops a watch set on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	target := filepath.Clean(path)

	go func() {
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(target)
				if err != nil {
					logger.L().WithError(err).Warn("config reload skipped")
					continue
				}
				logger.L().WithField("path", target).Info("config reloaded")
				onChange(cfg)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.L().WithError(err).Warn("config watcher error")
			case <-w.done:
				return
			}
		}
	}()
	return w, nil
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
