package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mealfold/meal-planner/internal/model"
)

// planFileName is the single TOML file holding the weekly plan
const planFileName = "plan.toml"

// PlanStore persists the weekly meal plan. Unlike recipes the plan is one
// document, so the whole file is rewritten on every change.
type PlanStore struct {
	plan      model.WeekPlan
	planMutex sync.RWMutex
	dataDir   string
	onUpdate  func() // callback for UI updates
}

// NewPlanStore creates a plan store rooted at dataDir
func NewPlanStore(dataDir string) *PlanStore {
	return &PlanStore{dataDir: dataDir}
}

// SetUpdateCallback sets the callback function invoked after plan changes
func (s *PlanStore) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Load reads the plan file. A missing file simply means an empty plan.
func (s *PlanStore) Load() error {
	if err := os.MkdirAll(s.dataDir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dataDir, err)
	}

	path := s.planPath()
	var plan model.WeekPlan
	if _, err := toml.DecodeFile(path, &plan); err != nil {
		if os.IsNotExist(err) {
			s.setPlan(model.WeekPlan{})
			return nil
		}
		return fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	s.setPlan(plan)
	return nil
}

func (s *PlanStore) setPlan(plan model.WeekPlan) {
	s.planMutex.Lock()
	s.plan = plan
	s.planMutex.Unlock()
}

// Plan returns a copy of the current plan safe for the caller to mutate
func (s *PlanStore) Plan() model.WeekPlan {
	s.planMutex.RLock()
	defer s.planMutex.RUnlock()
	return s.plan.Clone()
}

// MealAt returns the planned meal for the given day and slot
func (s *PlanStore) MealAt(day time.Weekday, slot model.MealSlot) (model.PlannedMeal, bool) {
	s.planMutex.RLock()
	defer s.planMutex.RUnlock()
	return s.plan.MealAt(day, slot)
}

// SetMeal places a meal into its (day, slot) cell and persists the plan
func (s *PlanStore) SetMeal(meal model.PlannedMeal) error {
	if !meal.Slot.IsValid() {
		return fmt.Errorf("unknown meal slot: %s", meal.Slot)
	}
	if meal.RecipeID == "" {
		return fmt.Errorf("meal has no recipe")
	}

	s.planMutex.Lock()
	s.plan.SetMeal(meal)
	err := s.save()
	s.planMutex.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// ClearMeal removes the meal at the given cell; clearing an empty cell is a
// no-op
func (s *PlanStore) ClearMeal(day time.Weekday, slot model.MealSlot) error {
	s.planMutex.Lock()
	removed := s.plan.ClearMeal(day, slot)
	var err error
	if removed {
		err = s.save()
	}
	s.planMutex.Unlock()

	if err != nil {
		return err
	}
	if removed {
		s.notifyUpdate()
	}
	return nil
}

// ClearWeek wipes the whole plan
func (s *PlanStore) ClearWeek() error {
	s.planMutex.Lock()
	s.plan = model.WeekPlan{}
	err := s.save()
	s.planMutex.Unlock()

	if err != nil {
		return err
	}
	s.notifyUpdate()
	return nil
}

// RemoveRecipe drops every planned meal referencing the given recipe, used
// when a recipe is deleted
func (s *PlanStore) RemoveRecipe(recipeID string) error {
	s.planMutex.Lock()
	kept := s.plan.Meals[:0]
	for _, meal := range s.plan.Meals {
		if meal.RecipeID != recipeID {
			kept = append(kept, meal)
		}
	}
	changed := len(kept) != len(s.plan.Meals)
	s.plan.Meals = kept
	var err error
	if changed {
		err = s.save()
	}
	s.planMutex.Unlock()

	if err != nil {
		return err
	}
	if changed {
		s.notifyUpdate()
	}
	return nil
}

// save writes the plan file atomically; callers hold the plan mutex
func (s *PlanStore) save() error {
	path := s.planPath()
	tempPath := path + tempFileSuffix

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return fmt.Errorf("failed to create temp plan file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(s.plan); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write plan: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (s *PlanStore) planPath() string {
	return filepath.Join(s.dataDir, planFileName)
}

func (s *PlanStore) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
