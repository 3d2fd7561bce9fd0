package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

// RecipeListView is the searchable recipe catalog, the start view of the
// application. Rows are recipe cards; tapping one navigates to its detail.
type RecipeListView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	nav          *navigation.Service
	recipes      *store.RecipeStore
	localization *Localization

	// visible is the filtered snapshot backing the list
	visible []*model.Recipe

	// UI components
	content     *fyne.Container
	searchEntry *widget.Entry
	list        *widget.List
	countLabel  *widget.Label
	emptyLabel  *widget.Label
	addButton   *widget.Button
}

// NewRecipeListView creates the recipe list view
func NewRecipeListView(args navigation.ViewArgs, recipes *store.RecipeStore, localization *Localization) *RecipeListView {
	v := &RecipeListView{
		nav:          args.Nav,
		recipes:      recipes,
		localization: localization,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	v.RefreshData()
	return v
}

// createUI creates the user interface of the recipe list
func (v *RecipeListView) createUI() {
	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeySearchRecipes))
	v.searchEntry.OnChanged = func(string) {
		v.RefreshData()
	}

	v.addButton = widget.NewButton(IconAdd+" "+v.localization.GetText(KeyAddRecipe), func() {
		if v.nav != nil {
			v.nav.NavigateTo("/recipes/add", nil)
		}
	})
	v.addButton.Importance = widget.HighImportance

	v.list = widget.NewList(
		func() int {
			return len(v.visible)
		},
		func() fyne.CanvasObject {
			return v.createRecipeRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			v.updateRecipeRow(id, obj)
		},
	)

	v.countLabel = widget.NewLabel("")
	v.emptyLabel = widget.NewLabel(v.localization.GetText(KeyNoRecipes))
	v.emptyLabel.Alignment = fyne.TextAlignCenter
	v.emptyLabel.Hide()

	topBar := container.NewBorder(nil, nil, nil, v.addButton, v.searchEntry)
	v.content = container.NewBorder(
		topBar,
		v.countLabel,
		nil,
		nil,
		container.NewStack(v.list, v.emptyLabel),
	)
}

// createRecipeRow creates a template row widget
func (v *RecipeListView) createRecipeRow() fyne.CanvasObject {
	card := NewRecipeCard(v.localization)
	card.SetOnSelect(func(recipeID string) {
		if v.nav != nil {
			v.nav.NavigateTo("/recipes/"+recipeID, nil)
		}
	})
	return card
}

// updateRecipeRow updates a row with actual recipe data
func (v *RecipeListView) updateRecipeRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(v.visible) {
		log.Printf("Warning: updateRecipeRow called with invalid ID %d, total recipes: %d", id, len(v.visible))
		return
	}

	card, ok := obj.(*RecipeCard)
	if !ok {
		log.Printf("Warning: expected RecipeCard but got %T", obj)
		return
	}
	card.SetRecipe(v.visible[id], 0)
}

// RefreshData reloads the visible recipes from the store, applying the
// current search query
func (v *RecipeListView) RefreshData() {
	query := ""
	if v.searchEntry != nil {
		query = v.searchEntry.Text
	}
	v.visible = v.recipes.Search(query)

	v.countLabel.SetText(v.localization.GetTextData(KeyRecipesCount, map[string]any{"Count": len(v.visible)}))

	if v.recipes.Count() == 0 {
		v.emptyLabel.Show()
	} else {
		v.emptyLabel.Hide()
	}
	v.list.Refresh()
}

// AfterNavigateTo refreshes the catalog on every visit
func (v *RecipeListView) AfterNavigateTo(string, map[string]string) {
	v.RefreshData()
}

// CreateRenderer creates the widget renderer
func (v *RecipeListView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
