package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

// RecipeDetailView shows one recipe in full: description, scalable
// ingredient list, steps, and edit/delete actions. The single cached
// instance follows the id parameter of the current route.
type RecipeDetailView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	nav          *navigation.Service
	recipes      *store.RecipeStore
	plan         *store.PlanStore
	settings     *config.Settings
	localization *Localization
	notify       func(message string)

	recipe   *model.Recipe
	servings int

	// UI components
	content          *fyne.Container
	titleLabel       *widget.Label
	descriptionLabel *widget.Label
	metaLabel        *widget.Label
	tagsLabel        *widget.Label
	servingsLabel    *widget.Label
	ingredientsLabel *widget.Label
	stepsLabel       *widget.Label
	minusButton      *widget.Button
	plusButton       *widget.Button
	editButton       *widget.Button
	deleteButton     *widget.Button
}

// NewRecipeDetailView creates the recipe detail view
func NewRecipeDetailView(args navigation.ViewArgs, recipes *store.RecipeStore, plan *store.PlanStore, settings *config.Settings, localization *Localization, notify func(string)) *RecipeDetailView {
	v := &RecipeDetailView{
		nav:          args.Nav,
		recipes:      recipes,
		plan:         plan,
		settings:     settings,
		localization: localization,
		notify:       notify,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	v.updateFromRecipe()
	return v
}

// createUI creates the user interface of the detail view
func (v *RecipeDetailView) createUI() {
	v.titleLabel = widget.NewLabel("")
	v.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.titleLabel.Wrapping = fyne.TextWrapWord

	v.descriptionLabel = widget.NewLabel("")
	v.descriptionLabel.Wrapping = fyne.TextWrapWord

	v.metaLabel = widget.NewLabel("")
	v.tagsLabel = widget.NewLabel("")

	v.servingsLabel = widget.NewLabel("")
	v.servingsLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.servingsLabel.Alignment = fyne.TextAlignCenter

	v.minusButton = widget.NewButton("−", func() {
		v.setServings(v.servings - 1)
	})
	v.plusButton = widget.NewButton("+", func() {
		v.setServings(v.servings + 1)
	})

	v.ingredientsLabel = widget.NewLabel("")
	v.ingredientsLabel.Wrapping = fyne.TextWrapWord

	v.stepsLabel = widget.NewLabel("")
	v.stepsLabel.Wrapping = fyne.TextWrapWord

	v.editButton = widget.NewButton(IconEdit+" "+v.localization.GetText(KeyEdit), v.onEdit)
	v.deleteButton = widget.NewButton(IconDelete+" "+v.localization.GetText(KeyDelete), v.onDelete)
	v.deleteButton.Importance = widget.DangerImportance

	actionRow := container.NewHBox(layout.NewSpacer(), v.editButton, v.deleteButton)
	servingsRow := container.NewHBox(
		widget.NewLabel(v.localization.GetText(KeyServings)+":"),
		v.minusButton,
		v.servingsLabel,
		v.plusButton,
		layout.NewSpacer(),
	)

	body := container.NewVBox(
		v.titleLabel,
		v.metaLabel,
		v.tagsLabel,
		v.descriptionLabel,
		widget.NewSeparator(),
		servingsRow,
		widget.NewLabel(v.localization.GetText(KeyIngredients)+":"),
		v.ingredientsLabel,
		widget.NewSeparator(),
		widget.NewLabel(v.localization.GetText(KeySteps)+":"),
		v.stepsLabel,
	)

	v.content = container.NewBorder(actionRow, nil, nil, nil, container.NewScroll(body))
}

// AfterNavigateTo loads the recipe named by the id route parameter
func (v *RecipeDetailView) AfterNavigateTo(path string, params map[string]string) {
	id := params["id"]
	recipe, ok := v.recipes.Get(id)
	if !ok {
		log.Printf("Recipe detail: no recipe with id %s", id)
		v.recipe = nil
		v.updateFromRecipe()
		return
	}

	v.recipe = recipe
	v.servings = recipe.Servings
	if v.servings <= 0 {
		v.servings = v.settings.GetDefaultServings()
	}
	v.updateFromRecipe()
}

// setServings rescales the ingredient list to the requested serving count
func (v *RecipeDetailView) setServings(servings int) {
	if servings < 1 {
		servings = 1
	}
	v.servings = servings
	v.updateFromRecipe()
}

// updateFromRecipe updates UI components from the current recipe
func (v *RecipeDetailView) updateFromRecipe() {
	if v.recipe == nil {
		v.titleLabel.SetText(v.localization.GetText(KeyRecipeNotFound))
		v.descriptionLabel.SetText("")
		v.metaLabel.SetText("")
		v.tagsLabel.SetText("")
		v.servingsLabel.SetText(DashPlaceholder)
		v.ingredientsLabel.SetText("")
		v.stepsLabel.SetText("")
		v.editButton.Disable()
		v.deleteButton.Disable()
		return
	}
	v.editButton.Enable()
	v.deleteButton.Enable()

	v.titleLabel.SetText(v.recipe.DisplayTitle())

	if v.recipe.Description != "" {
		v.descriptionLabel.SetText(v.recipe.Description)
		v.descriptionLabel.Show()
	} else {
		v.descriptionLabel.SetText("")
		v.descriptionLabel.Hide()
	}

	minutes := v.localization.GetText(KeyMinutesShort)
	metaParts := []string{}
	if v.recipe.PrepMinutes > 0 {
		metaParts = append(metaParts, fmt.Sprintf("%s %d %s", v.localization.GetText(KeyPrepTime), v.recipe.PrepMinutes, minutes))
	}
	if v.recipe.CookMinutes > 0 {
		metaParts = append(metaParts, fmt.Sprintf("%s %d %s", v.localization.GetText(KeyCookTime), v.recipe.CookMinutes, minutes))
	}
	if total := v.recipe.TotalMinutes(); total > 0 {
		metaParts = append(metaParts, fmt.Sprintf("%s %d %s", v.localization.GetText(KeyTotalTime), total, minutes))
	}
	v.metaLabel.SetText(strings.Join(metaParts, MiddleDotSeparator))

	if len(v.recipe.Tags) > 0 {
		v.tagsLabel.SetText(v.localization.GetText(KeyTags) + ": " + strings.Join(v.recipe.Tags, ", "))
		v.tagsLabel.Show()
	} else {
		v.tagsLabel.SetText("")
		v.tagsLabel.Hide()
	}

	v.servingsLabel.SetText(fmt.Sprintf("%d", v.servings))

	ingredientLines := make([]string, 0, len(v.recipe.Ingredients))
	for _, ingredient := range v.recipe.Scaled(v.servings) {
		ingredientLines = append(ingredientLines, "• "+ingredient.DisplayString())
	}
	v.ingredientsLabel.SetText(strings.Join(ingredientLines, "\n"))

	stepLines := make([]string, 0, len(v.recipe.Steps))
	for i, step := range v.recipe.Steps {
		stepLines = append(stepLines, fmt.Sprintf("%d. %s", i+1, step))
	}
	v.stepsLabel.SetText(strings.Join(stepLines, "\n"))
}

// onEdit navigates to the editor for the shown recipe
func (v *RecipeDetailView) onEdit() {
	if v.recipe == nil || v.nav == nil {
		return
	}
	v.nav.NavigateTo("/recipes/"+v.recipe.ID+"/edit", nil)
}

// onDelete asks for confirmation, then removes the recipe from the store and
// from any planner cells referencing it
func (v *RecipeDetailView) onDelete() {
	if v.recipe == nil || v.nav == nil {
		return
	}
	recipe := v.recipe
	window := v.nav.Window()
	if window == nil {
		log.Printf("Recipe detail: no window for delete confirmation")
		return
	}

	message := v.localization.GetTextData(KeyDeleteRecipeMessage, map[string]any{"Title": recipe.DisplayTitle()})
	dialog.NewCustomConfirm(
		v.localization.GetText(KeyDeleteRecipeTitle),
		v.localization.GetText(KeyDelete),
		v.localization.GetText(KeyCancel),
		widget.NewLabel(message),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			v.deleteRecipe(recipe)
		},
		window,
	).Show()
}

func (v *RecipeDetailView) deleteRecipe(recipe *model.Recipe) {
	if err := v.recipes.Delete(recipe.ID); err != nil {
		log.Printf("Failed to delete recipe %s: %v", recipe.ID, err)
		if v.notify != nil {
			v.notify(v.localization.GetText(KeyErrorDeleting))
		}
		return
	}

	if err := v.plan.RemoveRecipe(recipe.ID); err != nil {
		log.Printf("Failed to remove recipe %s from plan: %v", recipe.ID, err)
	}

	if v.notify != nil {
		v.notify(v.localization.GetText(KeyRecipeDeleted))
	}
	v.nav.NavigateTo("/recipes", nil)
}

// CreateRenderer creates the widget renderer
func (v *RecipeDetailView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
