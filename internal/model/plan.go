package model

import (
	"sort"
	"time"
)

// PlannedMeal assigns a recipe to one (day, slot) cell of the weekly plan
type PlannedMeal struct {
	Day      time.Weekday `toml:"day"`
	Slot     MealSlot     `toml:"slot"`
	RecipeID string       `toml:"recipe_id"`
	Servings int          `toml:"servings,omitempty"` // 0 means recipe default
}

// WeekPlan holds the meals planned for one week. At most one meal exists per
// (day, slot) pair; SetMeal replaces, it never duplicates.
type WeekPlan struct {
	Meals []PlannedMeal `toml:"meals,omitempty"`
}

// MealAt returns the meal planned for the given day and slot
func (wp *WeekPlan) MealAt(day time.Weekday, slot MealSlot) (PlannedMeal, bool) {
	for _, m := range wp.Meals {
		if m.Day == day && m.Slot == slot {
			return m, true
		}
	}
	return PlannedMeal{}, false
}

// SetMeal places a meal into its (day, slot) cell, replacing any previous one
func (wp *WeekPlan) SetMeal(meal PlannedMeal) {
	for i, m := range wp.Meals {
		if m.Day == meal.Day && m.Slot == meal.Slot {
			wp.Meals[i] = meal
			return
		}
	}
	wp.Meals = append(wp.Meals, meal)
}

// ClearMeal removes the meal at the given cell, returning true if one existed
func (wp *WeekPlan) ClearMeal(day time.Weekday, slot MealSlot) bool {
	for i, m := range wp.Meals {
		if m.Day == day && m.Slot == slot {
			wp.Meals = append(wp.Meals[:i], wp.Meals[i+1:]...)
			return true
		}
	}
	return false
}

// MealsFor returns the meals planned for one day, ordered breakfast to dinner
func (wp *WeekPlan) MealsFor(day time.Weekday) []PlannedMeal {
	var meals []PlannedMeal
	for _, m := range wp.Meals {
		if m.Day == day {
			meals = append(meals, m)
		}
	}
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].Slot.Index() < meals[j].Slot.Index()
	})
	return meals
}

// Clone returns a deep copy so callers can mutate freely
func (wp *WeekPlan) Clone() WeekPlan {
	meals := make([]PlannedMeal, len(wp.Meals))
	copy(meals, wp.Meals)
	return WeekPlan{Meals: meals}
}

// WeekDays returns the seven weekdays in display order for the given start day
func WeekDays(start time.Weekday) []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := 0; i < 7; i++ {
		days[i] = time.Weekday((int(start) + i) % 7)
	}
	return days
}
