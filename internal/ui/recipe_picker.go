package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

// View prop keys understood by the recipe picker
const (
	PropDay    = "day"
	PropSlot   = "slot"
	PropOnPick = "onPick"
)

// RecipePickerView is the modal recipe chooser the planner opens for a grid
// cell. It is built fresh on every show; the picked recipe id is reported
// through the onPick prop and the modal dismisses itself.
type RecipePickerView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	recipes      *store.RecipeStore
	localization *Localization

	onPick  func(recipeID string)
	dismiss func()

	// visible is the filtered snapshot backing the list
	visible []*model.Recipe

	// UI components
	content      *fyne.Container
	headingLabel *widget.Label
	searchEntry  *widget.Entry
	list         *widget.List
}

// NewRecipePickerView creates the picker from the navigation props
func NewRecipePickerView(args navigation.ViewArgs, recipes *store.RecipeStore, localization *Localization) *RecipePickerView {
	v := &RecipePickerView{
		recipes:      recipes,
		localization: localization,
	}

	if onPick, ok := args.Props[PropOnPick].(func(string)); ok {
		v.onPick = onPick
	} else {
		log.Printf("Recipe picker opened without an onPick prop")
	}

	v.ExtendBaseWidget(v)
	v.createUI(args)
	v.RefreshData()
	return v
}

// SetDismiss receives the func that closes the hosting modal
func (v *RecipePickerView) SetDismiss(dismiss func()) {
	v.dismiss = dismiss
}

// createUI creates the picker layout
func (v *RecipePickerView) createUI(args navigation.ViewArgs) {
	v.headingLabel = widget.NewLabel(v.headingText(args))
	v.headingLabel.TextStyle = fyne.TextStyle{Bold: true}

	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(v.localization.GetText(KeySearchRecipes))
	v.searchEntry.OnChanged = func(string) {
		v.RefreshData()
	}

	v.list = widget.NewList(
		func() int {
			return len(v.visible)
		},
		func() fyne.CanvasObject {
			return v.createPickRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			v.updatePickRow(id, obj)
		},
	)

	body := container.NewBorder(
		container.NewVBox(v.headingLabel, v.searchEntry),
		nil,
		nil,
		nil,
		v.list,
	)

	// Transparent spacer keeps the modal at a usable size
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(PickerDialogWidth, PickerDialogHeight))
	v.content = container.NewStack(spacer, body)
}

// headingText renders "Monday · Lunch" from the cell props, falling back to
// the generic prompt
func (v *RecipePickerView) headingText(args navigation.ViewArgs) string {
	day, hasDay := args.Props[PropDay].(time.Weekday)
	slot, hasSlot := args.Props[PropSlot].(model.MealSlot)
	if !hasDay || !hasSlot {
		return v.localization.GetText(KeyPickRecipe)
	}
	return v.localization.WeekdayText(day) + MiddleDotSeparator + v.localization.SlotText(slot.String())
}

// createPickRow creates a template row widget
func (v *RecipePickerView) createPickRow() fyne.CanvasObject {
	card := NewRecipeCard(v.localization)
	card.SetOnSelect(func(recipeID string) {
		v.pick(recipeID)
	})
	return card
}

// updatePickRow updates a row with actual recipe data
func (v *RecipePickerView) updatePickRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(v.visible) {
		log.Printf("Warning: updatePickRow called with invalid ID %d, total recipes: %d", id, len(v.visible))
		return
	}

	card, ok := obj.(*RecipeCard)
	if !ok {
		log.Printf("Warning: expected RecipeCard but got %T", obj)
		return
	}
	card.SetRecipe(v.visible[id], 0)
}

// pick reports the chosen recipe and closes the modal
func (v *RecipePickerView) pick(recipeID string) {
	if v.onPick != nil {
		v.onPick(recipeID)
	}
	if v.dismiss != nil {
		v.dismiss()
	}
}

// RefreshData reloads the pickable recipes, applying the search query
func (v *RecipePickerView) RefreshData() {
	query := ""
	if v.searchEntry != nil {
		query = v.searchEntry.Text
	}
	v.visible = v.recipes.Search(query)
	v.list.Refresh()
}

// CreateRenderer creates the widget renderer
func (v *RecipePickerView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
