package store

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher timing constants
const (
	// reloadDebounce collapses the event bursts editors produce into one reload
	reloadDebounce = 200 * time.Millisecond

	// selfWriteWindow is how long after one of our own saves watcher events
	// on recipe files are ignored
	selfWriteWindow = 500 * time.Millisecond
)

// recipeWatcher monitors the data directory for external edits
type recipeWatcher struct {
	fs *fsnotify.Watcher
}

// Watch starts monitoring the data directory and reloading the recipe set
// when files change on disk. Safe to call once; Close stops it again.
func (s *RecipeStore) Watch() error {
	if s.watcher != nil {
		return nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fs.Add(s.dataDir); err != nil {
		fs.Close()
		return fmt.Errorf("failed to watch %s: %w", s.dataDir, err)
	}

	s.watcher = &recipeWatcher{fs: fs}
	go s.watchLoop(fs)
	return nil
}

// Close stops the directory watcher. The store itself stays usable.
func (s *RecipeStore) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.fs.Close()
	s.watcher = nil
	return err
}

// watchLoop runs until the watcher closes, debouncing change events into
// full reloads
func (s *RecipeStore) watchLoop(fs *fsnotify.Watcher) {
	var reload *time.Timer
	defer func() {
		if reload != nil {
			reload.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fs.Events:
			if !ok {
				return
			}
			if !s.shouldReload(event) {
				continue
			}
			if reload == nil {
				reload = time.AfterFunc(reloadDebounce, func() {
					if err := s.Reload(); err != nil {
						log.Printf("Recipe reload failed: %v", err)
					}
				})
			} else {
				reload.Reset(reloadDebounce)
			}

		case err, ok := <-fs.Errors:
			if !ok {
				return
			}
			log.Printf("Recipe watcher error: %v", err)
		}
	}
}

// shouldReload filters watcher events down to external edits of recipe files
func (s *RecipeStore) shouldReload(event fsnotify.Event) bool {
	if !isRecipeFile(event.Name) {
		return false
	}
	// The week plan shares the directory but has its own store
	if filepath.Base(event.Name) == planFileName {
		return false
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	// Events caused by our own saves are already reflected in memory
	if time.Now().UnixNano() < s.selfWriteUntil.Load() {
		return false
	}
	return true
}

// isRecipeFile reports whether the path names a persisted TOML file rather
// than a temp file from an in-flight save
func isRecipeFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasSuffix(name, recipeFileExt) && !strings.HasSuffix(name, tempFileSuffix)
}
