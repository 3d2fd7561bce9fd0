package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

// RecipeCard is a compact recipe summary widget. It serves two masters: the
// planner embeds it directly into grid cells, and the router mounts it as
// primary content for recipe card routes. When standalone it navigates to the
// recipe detail on tap; when embedded it reports the tap to its parent
// through the select callback.
type RecipeCard struct {
	widget.BaseWidget
	navigation.LifecycleBase

	nav          *navigation.Service
	recipes      *store.RecipeStore
	localization *Localization

	recipe     *model.Recipe
	servings   int
	standalone bool

	// UI components
	titleLabel *widget.Label
	metaLabel  *widget.Label
	tagsLabel  *widget.Label

	// Callbacks
	onSelect func(recipeID string)
}

// NewRecipeCard creates an empty card for direct embedding; the parent fills
// it with SetRecipe
func NewRecipeCard(localization *Localization) *RecipeCard {
	rc := &RecipeCard{
		localization: localization,
	}
	rc.ExtendBaseWidget(rc)
	rc.createUI()
	rc.updateFromRecipe()
	return rc
}

// NewRecipeCardView creates the card for router mounting. The card resolves
// its recipe from the store on every navigation, so the single cached
// instance follows the id parameter of the current route.
func NewRecipeCardView(args navigation.ViewArgs, recipes *store.RecipeStore, localization *Localization) *RecipeCard {
	rc := NewRecipeCard(localization)
	rc.nav = args.Nav
	rc.recipes = recipes
	return rc
}

// SetRecipe updates the card contents. A servings value of zero shows the
// recipe's own default.
func (rc *RecipeCard) SetRecipe(recipe *model.Recipe, servings int) {
	rc.recipe = recipe
	rc.servings = servings
	rc.updateFromRecipe()
	rc.Refresh()
}

// SetOnSelect sets the callback invoked on tap while embedded
func (rc *RecipeCard) SetOnSelect(onSelect func(recipeID string)) {
	rc.onSelect = onSelect
}

// SetStandalone switches the card between navigating itself (standalone) and
// reporting taps to the embedding parent
func (rc *RecipeCard) SetStandalone(standalone bool) {
	rc.standalone = standalone
}

// AfterNavigateTo reloads the displayed recipe from the id route parameter
func (rc *RecipeCard) AfterNavigateTo(path string, params map[string]string) {
	if rc.recipes == nil {
		return
	}

	id := params["id"]
	recipe, ok := rc.recipes.Get(id)
	if !ok {
		log.Printf("Recipe card: no recipe with id %s", id)
		rc.SetRecipe(nil, 0)
		return
	}
	rc.SetRecipe(recipe, 0)
}

// Tapped handles a tap on the card area
func (rc *RecipeCard) Tapped(_ *fyne.PointEvent) {
	if rc.recipe == nil {
		return
	}

	if rc.standalone {
		if rc.nav != nil {
			rc.nav.NavigateTo("/recipes/"+rc.recipe.ID, nil)
		}
		return
	}

	if rc.onSelect != nil {
		rc.onSelect(rc.recipe.ID)
	}
}

// createUI creates the UI components
func (rc *RecipeCard) createUI() {
	rc.titleLabel = widget.NewLabel("")
	rc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	rc.metaLabel = widget.NewLabel("")
	rc.metaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rc.tagsLabel = widget.NewLabel("")
	rc.tagsLabel.Truncation = fyne.TextTruncateEllipsis
}

// updateFromRecipe updates UI components from the current recipe
func (rc *RecipeCard) updateFromRecipe() {
	if rc.recipe == nil {
		rc.titleLabel.SetText(DashPlaceholder)
		rc.metaLabel.SetText("")
		rc.tagsLabel.SetText("")
		return
	}

	rc.titleLabel.SetText(rc.recipe.DisplayTitle())

	meta := ""
	if total := rc.recipe.TotalMinutes(); total > 0 {
		meta = fmt.Sprintf("%d %s", total, rc.localization.GetText(KeyMinutesShort))
	}
	servings := rc.servings
	if servings <= 0 {
		servings = rc.recipe.Servings
	}
	if servings > 0 {
		if meta != "" {
			meta += MiddleDotSeparator
		}
		meta += fmt.Sprintf(ServingsFormat, servings)
	}
	rc.metaLabel.SetText(meta)

	rc.tagsLabel.SetText(strings.Join(rc.recipe.Tags, ", "))
}

// CreateRenderer creates the widget renderer
func (rc *RecipeCard) CreateRenderer() fyne.WidgetRenderer {
	return &recipeCardRenderer{card: rc}
}

// recipeCardRenderer renders the recipe card widget
type recipeCardRenderer struct {
	card   *RecipeCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *recipeCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *recipeCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	if min.Height < CardMinHeight {
		min.Height = CardMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *recipeCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *recipeCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *recipeCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *recipeCardRenderer) createLayout() {
	rc := r.card
	r.layout = container.NewVBox(
		rc.titleLabel,
		rc.metaLabel,
		rc.tagsLabel,
	)
}
