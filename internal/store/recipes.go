package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/mealfold/meal-planner/internal/model"
)

// Recipe file constants
const (
	RecipeIDPrefix = "recipe-"
	recipeFileExt  = ".toml"
	tempFileSuffix = ".tmp"
)

// File permissions
const (
	dirPermissions  = 0755
	filePermissions = 0644
)

// RecipeStore handles recipe persistence. Every recipe lives in its own TOML
// file named after its ID inside the data directory.
type RecipeStore struct {
	recipes      map[string]*model.Recipe
	recipesMutex sync.RWMutex
	dataDir      string
	onUpdate     func() // callback for UI updates

	watcher        *recipeWatcher
	selfWriteUntil atomic.Int64 // unix nanos; watcher events before this are our own saves
}

// NewRecipeStore creates a recipe store rooted at dataDir
func NewRecipeStore(dataDir string) *RecipeStore {
	return &RecipeStore{
		recipes: make(map[string]*model.Recipe),
		dataDir: dataDir,
	}
}

// SetUpdateCallback sets the callback function invoked after any change to
// the recipe set, including reloads triggered by external file edits
func (s *RecipeStore) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// DataDir returns the directory holding the recipe files
func (s *RecipeStore) DataDir() string {
	return s.dataDir
}

// Load reads every recipe file from the data directory into memory, creating
// the directory when it does not exist yet
func (s *RecipeStore) Load() error {
	if err := os.MkdirAll(s.dataDir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dataDir, err)
	}

	loaded, err := s.readAll()
	if err != nil {
		return err
	}

	s.recipesMutex.Lock()
	s.recipes = loaded
	s.recipesMutex.Unlock()
	return nil
}

// Reload re-reads the data directory and replaces the in-memory set. Used by
// the directory watcher after external edits.
func (s *RecipeStore) Reload() error {
	loaded, err := s.readAll()
	if err != nil {
		return err
	}

	s.recipesMutex.Lock()
	s.recipes = loaded
	s.recipesMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// readAll decodes every recipe file in the data directory. Files that fail to
// decode are skipped with a log line so one broken file cannot take down the
// whole collection.
func (s *RecipeStore) readAll() (map[string]*model.Recipe, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", s.dataDir, err)
	}

	recipes := make(map[string]*model.Recipe)
	for _, entry := range entries {
		if entry.IsDir() || !isRecipeFile(entry.Name()) {
			continue
		}
		if entry.Name() == planFileName {
			continue
		}

		path := filepath.Join(s.dataDir, entry.Name())
		var recipe model.Recipe
		if _, err := toml.DecodeFile(path, &recipe); err != nil {
			log.Printf("Skipping unreadable recipe file %s: %v", entry.Name(), err)
			continue
		}

		// Hand-written files may omit the id; derive it from the file name
		if recipe.ID == "" {
			recipe.ID = strings.TrimSuffix(entry.Name(), recipeFileExt)
		}
		recipes[recipe.ID] = &recipe
	}
	return recipes, nil
}

// Get returns a recipe by ID
func (s *RecipeStore) Get(id string) (*model.Recipe, bool) {
	s.recipesMutex.RLock()
	defer s.recipesMutex.RUnlock()
	recipe, exists := s.recipes[id]
	return recipe, exists
}

// List returns all recipes sorted by display title
func (s *RecipeStore) List() []*model.Recipe {
	s.recipesMutex.RLock()
	recipes := make([]*model.Recipe, 0, len(s.recipes))
	for _, recipe := range s.recipes {
		recipes = append(recipes, recipe)
	}
	s.recipesMutex.RUnlock()

	sort.Slice(recipes, func(i, j int) bool {
		ti := strings.ToLower(recipes[i].DisplayTitle())
		tj := strings.ToLower(recipes[j].DisplayTitle())
		if ti != tj {
			return ti < tj
		}
		return recipes[i].ID < recipes[j].ID
	})
	return recipes
}

// Count returns the number of stored recipes
func (s *RecipeStore) Count() int {
	s.recipesMutex.RLock()
	defer s.recipesMutex.RUnlock()
	return len(s.recipes)
}

// Search returns the recipes whose title, tags or ingredient names contain
// the query, case-insensitively. An empty query returns the full list.
func (s *RecipeStore) Search(query string) []*model.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	all := s.List()
	if query == "" {
		return all
	}

	var matched []*model.Recipe
	for _, recipe := range all {
		if recipeMatches(recipe, query) {
			matched = append(matched, recipe)
		}
	}
	return matched
}

func recipeMatches(recipe *model.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(recipe.Title), query) {
		return true
	}
	for _, tag := range recipe.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	for _, ing := range recipe.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// Add stores a new recipe, assigning an ID when the recipe has none, and
// persists it to disk
func (s *RecipeStore) Add(recipe *model.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe is nil")
	}
	if err := s.add(recipe); err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

func (s *RecipeStore) add(recipe *model.Recipe) error {
	s.recipesMutex.Lock()
	defer s.recipesMutex.Unlock()

	if recipe.ID == "" {
		recipe.ID = generateRecipeID()
	}
	if _, exists := s.recipes[recipe.ID]; exists {
		return fmt.Errorf("recipe already exists: %s", recipe.ID)
	}

	now := time.Now()
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	if err := s.save(recipe); err != nil {
		return err
	}

	s.recipes[recipe.ID] = recipe
	return nil
}

// Update persists changes to an existing recipe
func (s *RecipeStore) Update(recipe *model.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe is nil")
	}
	if err := s.update(recipe); err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

func (s *RecipeStore) update(recipe *model.Recipe) error {
	s.recipesMutex.Lock()
	defer s.recipesMutex.Unlock()

	if _, exists := s.recipes[recipe.ID]; !exists {
		return fmt.Errorf("recipe not found: %s", recipe.ID)
	}

	recipe.UpdatedAt = time.Now()
	if err := s.save(recipe); err != nil {
		return err
	}

	s.recipes[recipe.ID] = recipe
	return nil
}

// Delete removes a recipe from memory and disk
func (s *RecipeStore) Delete(id string) error {
	if err := s.remove(id); err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

func (s *RecipeStore) remove(id string) error {
	s.recipesMutex.Lock()
	defer s.recipesMutex.Unlock()

	if _, exists := s.recipes[id]; !exists {
		return fmt.Errorf("recipe not found: %s", id)
	}

	s.markSelfWrite()
	path := s.recipePath(id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete recipe file %s: %w", path, err)
	}

	delete(s.recipes, id)
	return nil
}

// save writes one recipe file atomically: encode into a temp file in the same
// directory, then rename over the final name
func (s *RecipeStore) save(recipe *model.Recipe) error {
	s.markSelfWrite()

	path := s.recipePath(recipe.ID)
	tempPath := path + tempFileSuffix

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", recipe.ID, err)
	}

	if err := toml.NewEncoder(f).Encode(recipe); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode recipe %s: %w", recipe.ID, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write recipe %s: %w", recipe.ID, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save recipe %s: %w", recipe.ID, err)
	}
	return nil
}

func (s *RecipeStore) recipePath(id string) string {
	return filepath.Join(s.dataDir, id+recipeFileExt)
}

// markSelfWrite opens the window in which watcher events are treated as our
// own disk writes rather than external edits
func (s *RecipeStore) markSelfWrite() {
	s.selfWriteUntil.Store(time.Now().Add(selfWriteWindow).UnixNano())
}

// notifyUpdate calls the update callback if set. Always invoked with the
// recipes mutex released so the callback may read the store freely.
func (s *RecipeStore) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// generateRecipeID returns a fresh recipe ID. UUID v7 keeps IDs unique and
// sorted by creation time.
func generateRecipeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RecipeIDPrefix+"%d", time.Now().UnixNano())
	}
	return RecipeIDPrefix + id.String()
}
