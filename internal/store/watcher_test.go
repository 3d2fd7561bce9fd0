package store

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestIsRecipeFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/data/recipe-1.toml", true},
		{"recipe-1.toml", true},
		{"/data/recipe-1.toml.tmp", false},
		{"/data/notes.txt", false},
		{"/data/recipe-1.json", false},
		{"/data/sub/recipe-2.toml", true},
	}

	for _, tt := range tests {
		if got := isRecipeFile(tt.path); got != tt.want {
			t.Errorf("isRecipeFile(%q): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestShouldReload(t *testing.T) {
	store := NewRecipeStore(t.TempDir())

	write := fsnotify.Event{Name: "/data/recipe-1.toml", Op: fsnotify.Write}
	if !store.shouldReload(write) {
		t.Error("Expected external write to trigger a reload")
	}

	remove := fsnotify.Event{Name: "/data/recipe-1.toml", Op: fsnotify.Remove}
	if !store.shouldReload(remove) {
		t.Error("Expected external remove to trigger a reload")
	}

	chmod := fsnotify.Event{Name: "/data/recipe-1.toml", Op: fsnotify.Chmod}
	if store.shouldReload(chmod) {
		t.Error("Expected chmod to be ignored")
	}

	temp := fsnotify.Event{Name: "/data/recipe-1.toml.tmp", Op: fsnotify.Create}
	if store.shouldReload(temp) {
		t.Error("Expected temp file events to be ignored")
	}

	plan := fsnotify.Event{Name: "/data/" + planFileName, Op: fsnotify.Write}
	if store.shouldReload(plan) {
		t.Error("Expected plan file events to be ignored")
	}
}

func TestShouldReloadSelfWriteWindow(t *testing.T) {
	store := NewRecipeStore(t.TempDir())
	event := fsnotify.Event{Name: "/data/recipe-1.toml", Op: fsnotify.Write}

	store.markSelfWrite()
	if store.shouldReload(event) {
		t.Error("Expected events inside the self-write window to be ignored")
	}

	store.selfWriteUntil.Store(time.Now().Add(-time.Second).UnixNano())
	if !store.shouldReload(event) {
		t.Error("Expected events after the self-write window to trigger a reload")
	}
}

func TestWatchAndClose(t *testing.T) {
	store := newTestRecipeStore(t)

	if err := store.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	// A second Watch call must not spawn a second watcher
	if err := store.Watch(); err != nil {
		t.Fatalf("Second Watch failed: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Close is idempotent
	if err := store.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}
