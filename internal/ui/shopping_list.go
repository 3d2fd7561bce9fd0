package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/platform"
	"github.com/mealfold/meal-planner/internal/store"
)

// ShoppingListView shows the aggregated ingredient list derived from the
// week plan. Items are checkable while shopping; the list is derived data
// and rebuilds whenever the plan changes, which resets the checkboxes.
type ShoppingListView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	recipes      *store.RecipeStore
	plan         *store.PlanStore
	settings     *config.Settings
	localization *Localization
	notify       func(message string)

	list         *model.ShoppingList
	exportedPath string

	// UI components
	content        *fyne.Container
	itemList       *widget.List
	remainingLabel *widget.Label
	emptyLabel     *widget.Label
	revealButton   *widget.Button
}

// NewShoppingListView creates the shopping list view
func NewShoppingListView(args navigation.ViewArgs, recipes *store.RecipeStore, plan *store.PlanStore, settings *config.Settings, localization *Localization, notify func(string)) *ShoppingListView {
	v := &ShoppingListView{
		recipes:      recipes,
		plan:         plan,
		settings:     settings,
		localization: localization,
		notify:       notify,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	v.Rebuild()
	return v
}

// createUI creates the shopping list layout
func (v *ShoppingListView) createUI() {
	rebuildButton := widget.NewButton(v.localization.GetText(KeyRebuildList), v.Rebuild)
	exportButton := widget.NewButton(v.localization.GetText(KeyExportList), v.onExport)
	exportButton.Importance = widget.HighImportance

	v.revealButton = widget.NewButton(IconFolder+" "+v.localization.GetText(KeyRevealInFolder), v.onReveal)
	v.revealButton.Disable()

	v.remainingLabel = widget.NewLabel("")
	v.emptyLabel = widget.NewLabel(v.localization.GetText(KeyListEmpty))
	v.emptyLabel.Alignment = fyne.TextAlignCenter
	v.emptyLabel.Hide()

	v.itemList = widget.NewList(
		func() int {
			if v.list == nil {
				return 0
			}
			return len(v.list.Items)
		},
		func() fyne.CanvasObject {
			return v.createItemRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			v.updateItemRow(id, obj)
		},
	)

	toolbar := container.NewHBox(rebuildButton, layout.NewSpacer(), v.revealButton, exportButton)
	v.content = container.NewBorder(
		toolbar,
		v.remainingLabel,
		nil,
		nil,
		container.NewStack(v.itemList, v.emptyLabel),
	)
}

// createItemRow creates a template row: a checkbox with the item text and the
// contributing recipes on the right
func (v *ShoppingListView) createItemRow() fyne.CanvasObject {
	check := widget.NewCheck("", nil)
	recipesLabel := widget.NewLabel("")
	recipesLabel.TextStyle = fyne.TextStyle{Italic: true}
	recipesLabel.Alignment = fyne.TextAlignTrailing
	return container.NewBorder(nil, nil, nil, recipesLabel, check)
}

// updateItemRow binds a row to one shopping item
func (v *ShoppingListView) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if v.list == nil || id >= len(v.list.Items) {
		log.Printf("Warning: updateItemRow called with invalid ID %d", id)
		return
	}

	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		log.Printf("Warning: unexpected shopping row layout %T", obj)
		return
	}

	item := v.list.Items[id]
	check := row.Objects[0].(*widget.Check)
	recipesLabel := row.Objects[1].(*widget.Label)

	// Detach the handler while syncing state so SetChecked does not echo
	check.OnChanged = nil
	check.Text = item.DisplayString()
	check.SetChecked(item.Checked)
	check.Refresh()
	check.OnChanged = func(checked bool) {
		v.list.Items[id].Checked = checked
		v.updateRemaining()
	}

	recipesLabel.SetText(strings.Join(item.Recipes, ", "))
}

// Rebuild derives a fresh list from the current plan, resetting checkboxes
func (v *ShoppingListView) Rebuild() {
	v.list = store.BuildShoppingList(v.plan.Plan(), v.recipes)
	v.refreshWidgets()
}

// PlanChanged rebuilds the list when the plan is edited elsewhere
func (v *ShoppingListView) PlanChanged() {
	v.Rebuild()
}

func (v *ShoppingListView) refreshWidgets() {
	if v.list == nil || len(v.list.Items) == 0 {
		v.emptyLabel.Show()
	} else {
		v.emptyLabel.Hide()
	}
	v.updateRemaining()
	v.itemList.Refresh()
}

func (v *ShoppingListView) updateRemaining() {
	remaining := 0
	if v.list != nil {
		remaining = v.list.Remaining()
	}
	v.remainingLabel.SetText(v.localization.GetTextData(KeyRemainingItems, map[string]any{"Count": remaining}))
}

// onExport writes the list as a text file into the export directory
func (v *ShoppingListView) onExport() {
	if v.list == nil || len(v.list.Items) == 0 {
		if v.notify != nil {
			v.notify(v.localization.GetText(KeyListEmpty))
		}
		return
	}

	path, err := store.ExportShoppingList(v.list, v.settings.GetExportDirectory())
	if err != nil {
		log.Printf("Failed to export shopping list: %v", err)
		if v.notify != nil {
			v.notify(v.localization.GetText(KeyErrorExporting))
		}
		return
	}

	log.Printf("Shopping list exported to %s", path)
	v.exportedPath = path
	v.revealButton.Enable()
	if v.notify != nil {
		v.notify(v.localization.GetText(KeyListExported))
	}
}

// onReveal opens the last export in the system file manager
func (v *ShoppingListView) onReveal() {
	if v.exportedPath == "" {
		return
	}
	if err := platform.OpenFileInManager(v.exportedPath); err != nil {
		log.Printf("Failed to reveal %s: %v", v.exportedPath, err)
	}
}

// AfterNavigateTo keeps the first visit cheap; later visits reuse the list
// the user may have half checked
func (v *ShoppingListView) AfterNavigateTo(string, map[string]string) {
	if v.list == nil {
		v.Rebuild()
	}
}

// CreateRenderer creates the widget renderer
func (v *ShoppingListView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
