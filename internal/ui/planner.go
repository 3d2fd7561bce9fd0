package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

// PreviewContext is the navigation lane of the planner's side panel. Recipe
// cards navigate there independently of the main content lane.
const PreviewContext = "planner.preview"

// PlannerView is the weekly meal grid. Empty cells open the recipe picker,
// filled cells preview their recipe in the side panel, and the week start day
// follows the settings.
type PlannerView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	nav          *navigation.Service
	recipes      *store.RecipeStore
	plan         *store.PlanStore
	settings     *config.Settings
	localization *Localization
	notify       func(message string)

	// UI components
	content    *fyne.Container
	gridHolder *fyne.Container
	preview    *StackTarget
}

// NewPlannerView creates the weekly planner view and binds the preview lane
func NewPlannerView(args navigation.ViewArgs, recipes *store.RecipeStore, plan *store.PlanStore, settings *config.Settings, localization *Localization, notify func(string)) *PlannerView {
	v := &PlannerView{
		nav:          args.Nav,
		recipes:      recipes,
		plan:         plan,
		settings:     settings,
		localization: localization,
		notify:       notify,
	}
	v.ExtendBaseWidget(v)

	v.preview = NewStackTarget()
	if v.nav != nil {
		v.nav.BindContext(PreviewContext, v.preview)
	}

	v.createUI()
	v.RefreshData()
	return v
}

// createUI creates the planner layout
func (v *PlannerView) createUI() {
	v.gridHolder = container.NewStack()

	clearButton := widget.NewButton(v.localization.GetText(KeyClearWeek), v.onClearWeek)
	toolbar := container.NewHBox(layout.NewSpacer(), clearButton)

	// Transparent spacer keeps the preview panel width stable while empty
	previewSpacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	previewSpacer.SetMinSize(fyne.NewSize(PreviewWidth, 0))
	previewPanel := container.NewStack(previewSpacer, v.preview.Container())

	v.content = container.NewBorder(
		toolbar,
		nil,
		nil,
		previewPanel,
		container.NewScroll(v.gridHolder),
	)
}

// RefreshData rebuilds the grid from the current plan and settings
func (v *PlannerView) RefreshData() {
	days := model.WeekDays(v.settings.GetWeekStart())
	plan := v.plan.Plan()

	columns := make([]fyne.CanvasObject, 0, len(days))
	for _, day := range days {
		columns = append(columns, v.buildDayColumn(plan, day))
	}

	grid := container.NewGridWithColumns(len(days), columns...)
	v.gridHolder.Objects = []fyne.CanvasObject{grid}
	v.gridHolder.Refresh()
}

// buildDayColumn builds one weekday column with its three meal cells
func (v *PlannerView) buildDayColumn(plan model.WeekPlan, day time.Weekday) fyne.CanvasObject {
	header := widget.NewLabel(v.localization.WeekdayText(day))
	header.TextStyle = fyne.TextStyle{Bold: true}
	header.Alignment = fyne.TextAlignCenter

	column := container.NewVBox(header)
	for _, slot := range model.AllMealSlots() {
		column.Add(v.buildCell(plan, day, slot))
	}
	return column
}

// buildCell builds one (day, slot) cell: a recipe card with a remove action
// when a meal is planned, a pick button otherwise
func (v *PlannerView) buildCell(plan model.WeekPlan, day time.Weekday, slot model.MealSlot) fyne.CanvasObject {
	caption := widget.NewLabel(slotIcon(slot) + " " + v.localization.SlotText(slot.String()))

	meal, planned := plan.MealAt(day, slot)
	if !planned {
		pickButton := widget.NewButton(IconAdd, func() {
			v.openPicker(day, slot)
		})
		return sizedCell(container.NewVBox(caption, pickButton, widget.NewSeparator()))
	}

	recipe, ok := v.recipes.Get(meal.RecipeID)
	if !ok {
		// The plan references a recipe deleted outside the app
		log.Printf("Planner: plan references missing recipe %s", meal.RecipeID)
		missingLabel := widget.NewLabel(DashPlaceholder)
		removeButton := v.buildRemoveButton(day, slot)
		return sizedCell(container.NewVBox(caption, missingLabel, removeButton, widget.NewSeparator()))
	}

	card := NewRecipeCard(v.localization)
	card.SetRecipe(recipe, meal.Servings)
	card.SetOnSelect(func(recipeID string) {
		v.showPreview(recipeID)
	})

	removeButton := v.buildRemoveButton(day, slot)
	return sizedCell(container.NewVBox(caption, card, removeButton, widget.NewSeparator()))
}

// sizedCell keeps planner cells from collapsing below a uniform size
func sizedCell(content fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(PlannerCellW, PlannerCellH))
	return container.NewStack(spacer, content)
}

func (v *PlannerView) buildRemoveButton(day time.Weekday, slot model.MealSlot) *widget.Button {
	removeButton := widget.NewButton(v.localization.GetText(KeyRemoveMeal), func() {
		if err := v.plan.ClearMeal(day, slot); err != nil {
			log.Printf("Failed to clear meal %s/%s: %v", day, slot, err)
			return
		}
		v.RefreshData()
	})
	removeButton.Importance = widget.LowImportance
	return removeButton
}

// showPreview navigates the side panel lane to the tapped recipe's card
func (v *PlannerView) showPreview(recipeID string) {
	if v.nav == nil {
		return
	}
	v.nav.NavigateTo("/recipes/"+recipeID+"/card", nil, navigation.InContext(PreviewContext))
}

// openPicker shows the recipe picker modal for one cell. The picked recipe
// lands in the plan through the callback passed as a view prop.
func (v *PlannerView) openPicker(day time.Weekday, slot model.MealSlot) {
	if v.nav == nil {
		return
	}

	v.nav.NavigateTo("/recipe-picker", nil, navigation.WithProps(map[string]any{
		PropDay:  day,
		PropSlot: slot,
		PropOnPick: func(recipeID string) {
			v.placeMeal(day, slot, recipeID)
		},
	}))
}

// placeMeal writes one picked recipe into its cell
func (v *PlannerView) placeMeal(day time.Weekday, slot model.MealSlot, recipeID string) {
	meal := model.PlannedMeal{Day: day, Slot: slot, RecipeID: recipeID}
	if err := v.plan.SetMeal(meal); err != nil {
		log.Printf("Failed to plan meal %s/%s: %v", day, slot, err)
		return
	}
	if v.notify != nil {
		v.notify(v.localization.GetText(KeyMealPlanned))
	}
	v.RefreshData()
}

// onClearWeek empties the whole plan
func (v *PlannerView) onClearWeek() {
	if err := v.plan.ClearWeek(); err != nil {
		log.Printf("Failed to clear week: %v", err)
		return
	}
	v.RefreshData()
}

// AfterNavigateTo rebuilds the grid on every visit, picking up settings and
// store changes made elsewhere
func (v *PlannerView) AfterNavigateTo(string, map[string]string) {
	v.RefreshData()
}

// CreateRenderer creates the widget renderer
func (v *PlannerView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// slotIcon returns the emoji for a meal slot
func slotIcon(slot model.MealSlot) string {
	switch slot {
	case model.SlotBreakfast:
		return IconBreakfast
	case model.SlotLunch:
		return IconLunch
	case model.SlotDinner:
		return IconDinner
	default:
		return ""
	}
}
