package store

import (
	"testing"
	"time"

	"github.com/mealfold/meal-planner/internal/model"
)

func newTestPlanStore(t *testing.T) *PlanStore {
	t.Helper()
	store := NewPlanStore(t.TempDir())
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestPlanStoreLoadMissingFile(t *testing.T) {
	store := newTestPlanStore(t)

	plan := store.Plan()
	if len(plan.Meals) != 0 {
		t.Errorf("Expected empty plan, got %d meals", len(plan.Meals))
	}
}

func TestPlanStoreSetMeal(t *testing.T) {
	store := newTestPlanStore(t)

	meal := model.PlannedMeal{
		Day:      time.Monday,
		Slot:     model.SlotDinner,
		RecipeID: "recipe-1",
		Servings: 4,
	}
	if err := store.SetMeal(meal); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}

	got, exists := store.MealAt(time.Monday, model.SlotDinner)
	if !exists {
		t.Fatal("Expected meal to exist")
	}
	if got.RecipeID != "recipe-1" || got.Servings != 4 {
		t.Errorf("Expected recipe-1 with 4 servings, got %+v", got)
	}

	// Persisted state must survive a fresh store
	reopened := NewPlanStore(store.dataDir)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, exists = reopened.MealAt(time.Monday, model.SlotDinner)
	if !exists {
		t.Fatal("Expected meal to survive reload")
	}
	if got.RecipeID != "recipe-1" {
		t.Errorf("Expected recipe-1 after reload, got %q", got.RecipeID)
	}
}

func TestPlanStoreSetMealReplaces(t *testing.T) {
	store := newTestPlanStore(t)

	first := model.PlannedMeal{Day: time.Tuesday, Slot: model.SlotLunch, RecipeID: "recipe-1"}
	second := model.PlannedMeal{Day: time.Tuesday, Slot: model.SlotLunch, RecipeID: "recipe-2"}

	if err := store.SetMeal(first); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}
	if err := store.SetMeal(second); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}

	plan := store.Plan()
	if len(plan.Meals) != 1 {
		t.Fatalf("Expected 1 meal after replacement, got %d", len(plan.Meals))
	}
	if plan.Meals[0].RecipeID != "recipe-2" {
		t.Errorf("Expected recipe-2, got %q", plan.Meals[0].RecipeID)
	}
}

func TestPlanStoreSetMealValidation(t *testing.T) {
	store := newTestPlanStore(t)

	err := store.SetMeal(model.PlannedMeal{Day: time.Monday, Slot: "Brunch", RecipeID: "recipe-1"})
	if err == nil {
		t.Error("Expected error for unknown slot, got nil")
	}

	err = store.SetMeal(model.PlannedMeal{Day: time.Monday, Slot: model.SlotLunch})
	if err == nil {
		t.Error("Expected error for missing recipe, got nil")
	}
}

func TestPlanStoreClearMeal(t *testing.T) {
	store := newTestPlanStore(t)

	meal := model.PlannedMeal{Day: time.Friday, Slot: model.SlotBreakfast, RecipeID: "recipe-1"}
	if err := store.SetMeal(meal); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}

	if err := store.ClearMeal(time.Friday, model.SlotBreakfast); err != nil {
		t.Fatalf("ClearMeal failed: %v", err)
	}
	if _, exists := store.MealAt(time.Friday, model.SlotBreakfast); exists {
		t.Error("Expected meal to be cleared")
	}

	// Clearing an empty cell is a no-op, not an error
	if err := store.ClearMeal(time.Friday, model.SlotBreakfast); err != nil {
		t.Errorf("Expected clearing an empty cell to succeed, got %v", err)
	}
}

func TestPlanStorePlanReturnsCopy(t *testing.T) {
	store := newTestPlanStore(t)

	if err := store.SetMeal(model.PlannedMeal{Day: time.Sunday, Slot: model.SlotDinner, RecipeID: "recipe-1"}); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}

	plan := store.Plan()
	plan.SetMeal(model.PlannedMeal{Day: time.Sunday, Slot: model.SlotDinner, RecipeID: "recipe-hacked"})

	got, _ := store.MealAt(time.Sunday, model.SlotDinner)
	if got.RecipeID != "recipe-1" {
		t.Error("Expected store plan to be unaffected by mutations of the returned copy")
	}
}

func TestPlanStoreRemoveRecipe(t *testing.T) {
	store := newTestPlanStore(t)

	meals := []model.PlannedMeal{
		{Day: time.Monday, Slot: model.SlotLunch, RecipeID: "recipe-keep"},
		{Day: time.Monday, Slot: model.SlotDinner, RecipeID: "recipe-gone"},
		{Day: time.Wednesday, Slot: model.SlotDinner, RecipeID: "recipe-gone"},
	}
	for _, meal := range meals {
		if err := store.SetMeal(meal); err != nil {
			t.Fatalf("SetMeal failed: %v", err)
		}
	}

	if err := store.RemoveRecipe("recipe-gone"); err != nil {
		t.Fatalf("RemoveRecipe failed: %v", err)
	}

	plan := store.Plan()
	if len(plan.Meals) != 1 {
		t.Fatalf("Expected 1 meal left, got %d", len(plan.Meals))
	}
	if plan.Meals[0].RecipeID != "recipe-keep" {
		t.Errorf("Expected recipe-keep to survive, got %q", plan.Meals[0].RecipeID)
	}

	// Removing a recipe never referenced is a no-op
	if err := store.RemoveRecipe("recipe-unknown"); err != nil {
		t.Errorf("Expected no-op removal to succeed, got %v", err)
	}
}

func TestPlanStoreClearWeek(t *testing.T) {
	store := newTestPlanStore(t)

	if err := store.SetMeal(model.PlannedMeal{Day: time.Monday, Slot: model.SlotLunch, RecipeID: "recipe-1"}); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}
	if err := store.ClearWeek(); err != nil {
		t.Fatalf("ClearWeek failed: %v", err)
	}

	if len(store.Plan().Meals) != 0 {
		t.Error("Expected empty plan after ClearWeek")
	}
}

func TestPlanStoreUpdateCallback(t *testing.T) {
	store := newTestPlanStore(t)

	updates := 0
	store.SetUpdateCallback(func() { updates++ })

	if err := store.SetMeal(model.PlannedMeal{Day: time.Monday, Slot: model.SlotLunch, RecipeID: "recipe-1"}); err != nil {
		t.Fatalf("SetMeal failed: %v", err)
	}
	if err := store.ClearMeal(time.Monday, model.SlotLunch); err != nil {
		t.Fatalf("ClearMeal failed: %v", err)
	}
	// No-op clears stay silent
	if err := store.ClearMeal(time.Monday, model.SlotLunch); err != nil {
		t.Fatalf("ClearMeal failed: %v", err)
	}

	if updates != 2 {
		t.Errorf("Expected 2 update callbacks, got %d", updates)
	}
}
