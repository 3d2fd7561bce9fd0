package ui

import (
	"image/color"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

// RecipeEditorView is the add/edit form for recipes. It serves both the add
// route (no id parameter) and the edit route. While the form holds unsaved
// changes it vetoes navigation away and asks for confirmation instead; the
// confirmed discard resets the form and re-issues the navigation.
type RecipeEditorView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	nav          *navigation.Service
	recipes      *store.RecipeStore
	settings     *config.Settings
	localization *Localization
	notify       func(message string)

	// editingID is empty while adding a new recipe
	editingID string
	created   *model.Recipe
	pristine  string

	// pending navigation target held while the discard confirmation is open
	pendingPath   string
	pendingParams map[string]string

	// UI components
	content          *fyne.Container
	headingLabel     *widget.Label
	titleEntry       *widget.Entry
	descriptionEntry *widget.Entry
	servingsEntry    *widget.Entry
	prepEntry        *widget.Entry
	cookEntry        *widget.Entry
	tagsEntry        *widget.Entry
	ingredientsEntry *widget.Entry
	stepsEntry       *widget.Entry
	saveButton       *widget.Button
	cancelButton     *widget.Button
}

// NewRecipeEditorView creates the recipe editor view
func NewRecipeEditorView(args navigation.ViewArgs, recipes *store.RecipeStore, settings *config.Settings, localization *Localization, notify func(string)) *RecipeEditorView {
	v := &RecipeEditorView{
		nav:          args.Nav,
		recipes:      recipes,
		settings:     settings,
		localization: localization,
		notify:       notify,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	v.loadBlank()
	return v
}

// createUI creates the editor form
func (v *RecipeEditorView) createUI() {
	l := v.localization

	v.headingLabel = widget.NewLabel("")
	v.headingLabel.TextStyle = fyne.TextStyle{Bold: true}

	v.titleEntry = widget.NewEntry()
	v.titleEntry.SetPlaceHolder(l.GetText(KeyTitleLabel))

	v.descriptionEntry = widget.NewMultiLineEntry()
	v.descriptionEntry.SetPlaceHolder(l.GetText(KeyDescriptionLabel))
	v.descriptionEntry.SetMinRowsVisible(2)
	v.descriptionEntry.Wrapping = fyne.TextWrapWord

	v.servingsEntry = widget.NewEntry()
	v.prepEntry = widget.NewEntry()
	v.cookEntry = widget.NewEntry()

	v.tagsEntry = widget.NewEntry()
	v.tagsEntry.SetPlaceHolder(l.GetText(KeyTagsHint))

	v.ingredientsEntry = widget.NewMultiLineEntry()
	v.ingredientsEntry.SetPlaceHolder(l.GetText(KeyIngredientsHint))
	v.ingredientsEntry.SetMinRowsVisible(6)

	v.stepsEntry = widget.NewMultiLineEntry()
	v.stepsEntry.SetPlaceHolder(l.GetText(KeyStepsHint))
	v.stepsEntry.SetMinRowsVisible(6)

	v.saveButton = widget.NewButton(l.GetText(KeySave), v.onSave)
	v.saveButton.Importance = widget.HighImportance
	v.cancelButton = widget.NewButton(l.GetText(KeyCancel), v.onCancel)

	minutes := l.GetText(KeyMinutesShort)
	numbersRow := container.NewHBox(
		widget.NewLabel(l.GetText(KeyServings)+":"),
		v.servingsEntry,
		widget.NewLabel(l.GetText(KeyPrepTime)+" ("+minutes+"):"),
		v.prepEntry,
		widget.NewLabel(l.GetText(KeyCookTime)+" ("+minutes+"):"),
		v.cookEntry,
		layout.NewSpacer(),
	)
	buttonRow := container.NewHBox(layout.NewSpacer(), v.cancelButton, v.saveButton)

	form := container.NewVBox(
		v.headingLabel,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyTitleLabel)+":"),
		v.titleEntry,
		widget.NewLabel(l.GetText(KeyDescriptionLabel)+":"),
		v.descriptionEntry,
		numbersRow,
		widget.NewLabel(l.GetText(KeyTags)+":"),
		v.tagsEntry,
		widget.NewLabel(l.GetText(KeyIngredients)+":"),
		v.ingredientsEntry,
		widget.NewLabel(l.GetText(KeySteps)+":"),
		v.stepsEntry,
	)

	// Transparent spacer keeps the form wide enough for the multiline entries
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(EditorMinWidth, 0))
	body := container.NewBorder(nil, buttonRow, nil, nil, container.NewScroll(form))
	v.content = container.NewStack(spacer, body)
}

// AfterNavigateTo loads the recipe for the edit route or a blank form for the
// add route, and resets dirty tracking
func (v *RecipeEditorView) AfterNavigateTo(path string, params map[string]string) {
	id := params["id"]
	if id == "" {
		v.loadBlank()
		return
	}

	recipe, ok := v.recipes.Get(id)
	if !ok {
		log.Printf("Recipe editor: no recipe with id %s, starting blank", id)
		v.loadBlank()
		return
	}
	v.loadRecipe(recipe)
}

// BeforeNavigateFrom vetoes leaving while the form is dirty and discard
// confirmation is enabled. The confirmation dialog re-issues the navigation
// after the user discards.
func (v *RecipeEditorView) BeforeNavigateFrom(path string, params map[string]string) bool {
	if !v.dirty() {
		return true
	}
	if !v.settings.GetConfirmDiscard() {
		return true
	}

	window := v.nav.Window()
	if window == nil {
		// Nothing to ask on; let the navigation proceed
		return true
	}

	v.pendingPath = path
	v.pendingParams = make(map[string]string, len(params))
	for name, value := range params {
		v.pendingParams[name] = value
	}

	dialog.NewCustomConfirm(
		v.localization.GetText(KeyDiscardTitle),
		v.localization.GetText(KeyDiscard),
		v.localization.GetText(KeyKeepEditing),
		widget.NewLabel(v.localization.GetText(KeyDiscardMessage)),
		v.onDiscardDecision,
		window,
	).Show()
	return false
}

// onDiscardDecision resumes or abandons the navigation held back by the
// dirty-form veto
func (v *RecipeEditorView) onDiscardDecision(discard bool) {
	path, params := v.pendingPath, v.pendingParams
	v.pendingPath, v.pendingParams = "", nil

	if !discard || path == "" {
		return
	}

	// Reset to the last saved state so the retry passes the dirty check
	if v.editingID != "" {
		if recipe, ok := v.recipes.Get(v.editingID); ok {
			v.loadRecipe(recipe)
		} else {
			v.loadBlank()
		}
	} else {
		v.loadBlank()
	}

	v.nav.NavigateTo(path, params)
}

// loadBlank prepares the form for a new recipe
func (v *RecipeEditorView) loadBlank() {
	v.editingID = ""
	v.created = nil
	v.headingLabel.SetText(v.localization.GetText(KeyNewRecipe))
	v.titleEntry.SetText("")
	v.descriptionEntry.SetText("")
	v.servingsEntry.SetText(strconv.Itoa(v.settings.GetDefaultServings()))
	v.prepEntry.SetText("")
	v.cookEntry.SetText("")
	v.tagsEntry.SetText("")
	v.ingredientsEntry.SetText("")
	v.stepsEntry.SetText("")
	v.markClean()
}

// loadRecipe fills the form from an existing recipe
func (v *RecipeEditorView) loadRecipe(recipe *model.Recipe) {
	v.editingID = recipe.ID
	v.created = recipe
	v.headingLabel.SetText(v.localization.GetText(KeyEditRecipe) + ": " + recipe.DisplayTitle())
	v.titleEntry.SetText(recipe.Title)
	v.descriptionEntry.SetText(recipe.Description)
	v.servingsEntry.SetText(strconv.Itoa(recipe.Servings))
	v.prepEntry.SetText(formatMinutes(recipe.PrepMinutes))
	v.cookEntry.SetText(formatMinutes(recipe.CookMinutes))
	v.tagsEntry.SetText(strings.Join(recipe.Tags, ", "))

	ingredientLines := make([]string, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredientLines = append(ingredientLines, ingredient.DisplayString())
	}
	v.ingredientsEntry.SetText(strings.Join(ingredientLines, "\n"))
	v.stepsEntry.SetText(strings.Join(recipe.Steps, "\n"))
	v.markClean()
}

// snapshot serializes the form fields for dirty comparison
func (v *RecipeEditorView) snapshot() string {
	return strings.Join([]string{
		v.titleEntry.Text,
		v.descriptionEntry.Text,
		v.servingsEntry.Text,
		v.prepEntry.Text,
		v.cookEntry.Text,
		v.tagsEntry.Text,
		v.ingredientsEntry.Text,
		v.stepsEntry.Text,
	}, "\x00")
}

func (v *RecipeEditorView) markClean() {
	v.pristine = v.snapshot()
}

func (v *RecipeEditorView) dirty() bool {
	return v.snapshot() != v.pristine
}

// onSave validates the form, writes the recipe, and navigates to its detail
func (v *RecipeEditorView) onSave() {
	title := strings.TrimSpace(v.titleEntry.Text)
	if title == "" {
		if v.notify != nil {
			v.notify(v.localization.GetText(KeyTitleRequired))
		}
		return
	}

	recipe := v.buildRecipe(title)

	var err error
	if v.editingID == "" {
		err = v.recipes.Add(recipe)
	} else {
		err = v.recipes.Update(recipe)
	}
	if err != nil {
		log.Printf("Failed to save recipe %q: %v", title, err)
		if v.notify != nil {
			v.notify(v.localization.GetText(KeyErrorSaving))
		}
		return
	}

	v.markClean()
	if v.notify != nil {
		v.notify(v.localization.GetText(KeyRecipeSaved))
	}
	v.nav.NavigateTo("/recipes/"+recipe.ID, nil)
}

// buildRecipe assembles a recipe from the form fields
func (v *RecipeEditorView) buildRecipe(title string) *model.Recipe {
	recipe := &model.Recipe{
		ID:          v.editingID,
		Title:       title,
		Description: strings.TrimSpace(v.descriptionEntry.Text),
		Servings:    parseCount(v.servingsEntry.Text, v.settings.GetDefaultServings()),
		PrepMinutes: parseCount(v.prepEntry.Text, 0),
		CookMinutes: parseCount(v.cookEntry.Text, 0),
		Tags:        parseTags(v.tagsEntry.Text),
		Ingredients: parseIngredients(v.ingredientsEntry.Text),
		Steps:       parseLines(v.stepsEntry.Text),
	}
	if v.editingID != "" && v.created != nil {
		recipe.CreatedAt = v.created.CreatedAt
	}
	return recipe
}

// onCancel leaves the editor; the dirty check in BeforeNavigateFrom still
// applies
func (v *RecipeEditorView) onCancel() {
	if v.nav.CanGoBack(navigation.DefaultContext) {
		v.nav.GoBack(navigation.DefaultContext)
		return
	}
	v.nav.NavigateTo("/recipes", nil)
}

// CreateRenderer creates the widget renderer
func (v *RecipeEditorView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

func formatMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return strconv.Itoa(minutes)
}

// parseCount parses a non-negative integer entry, falling back on bad input
func parseCount(text string, fallback int) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	count, err := strconv.Atoi(text)
	if err != nil || count < 0 {
		return fallback
	}
	return count
}

// parseTags splits a comma separated tag list, dropping empties
func parseTags(text string) []string {
	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// parseLines splits a multiline entry into trimmed non-empty lines
func parseLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// parseIngredients parses one ingredient per line in the same shape
// DisplayString renders: "200 g flour (sifted)". A line without a leading
// quantity becomes an unmeasured ingredient.
func parseIngredients(text string) []model.Ingredient {
	var ingredients []model.Ingredient
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if line == "" {
			continue
		}
		ingredients = append(ingredients, parseIngredientLine(line))
	}
	return ingredients
}

func parseIngredientLine(line string) model.Ingredient {
	var ingredient model.Ingredient

	// Trailing "(note)" becomes the note
	if strings.HasSuffix(line, ")") {
		if open := strings.LastIndex(line, "("); open > 0 {
			ingredient.Note = strings.TrimSpace(line[open+1 : len(line)-1])
			line = strings.TrimSpace(line[:open])
		}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ingredient
	}

	quantity, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || quantity < 0 {
		ingredient.Name = strings.Join(fields, " ")
		return ingredient
	}
	ingredient.Quantity = quantity

	rest := fields[1:]
	if len(rest) >= 2 {
		ingredient.Unit = rest[0]
		rest = rest[1:]
	}
	ingredient.Name = strings.Join(rest, " ")
	return ingredient
}
