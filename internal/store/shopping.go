package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mealfold/meal-planner/internal/model"
)

// RecipeLookup resolves recipe IDs during shopping list aggregation
type RecipeLookup interface {
	Get(id string) (*model.Recipe, bool)
}

// aggregationKey merges ingredient lines that name the same thing in the
// same unit regardless of letter case
type aggregationKey struct {
	name string
	unit string
}

// BuildShoppingList aggregates the ingredients of every planned meal into a
// flat list. Quantities are scaled to the planned servings first; meals whose
// recipe no longer exists are skipped. Items come back sorted by name.
func BuildShoppingList(plan model.WeekPlan, recipes RecipeLookup) *model.ShoppingList {
	items := make(map[aggregationKey]*model.ShoppingItem)

	for _, meal := range plan.Meals {
		recipe, exists := recipes.Get(meal.RecipeID)
		if !exists {
			continue
		}

		title := recipe.DisplayTitle()
		for _, ing := range recipe.Scaled(meal.Servings) {
			if strings.TrimSpace(ing.Name) == "" {
				continue
			}

			key := aggregationKey{
				name: strings.ToLower(ing.Name),
				unit: strings.ToLower(ing.Unit),
			}
			item, merged := items[key]
			if !merged {
				item = &model.ShoppingItem{Name: ing.Name, Unit: ing.Unit}
				items[key] = item
			}
			item.Quantity += ing.Quantity
			if !containsString(item.Recipes, title) {
				item.Recipes = append(item.Recipes, title)
			}
		}
	}

	list := &model.ShoppingList{GeneratedAt: time.Now()}
	for _, item := range items {
		list.Items = append(list.Items, *item)
	}
	sort.Slice(list.Items, func(i, j int) bool {
		ni := strings.ToLower(list.Items[i].Name)
		nj := strings.ToLower(list.Items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return list.Items[i].Unit < list.Items[j].Unit
	})
	return list
}

// ExportShoppingList writes the list as a plain text checklist into dir and
// returns the path of the written file
func ExportShoppingList(list *model.ShoppingList, dir string) (string, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	date := list.GeneratedAt
	if date.IsZero() {
		date = time.Now()
	}
	path := filepath.Join(dir, fmt.Sprintf("shopping-list-%s.txt", date.Format("2006-01-02")))

	if err := os.WriteFile(path, []byte(list.ExportText()), filePermissions); err != nil {
		return "", fmt.Errorf("failed to write shopping list: %w", err)
	}
	return path, nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
