package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/model"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/store"
)

func newTestEditor(t *testing.T, notify func(string)) (*RecipeEditorView, *store.RecipeStore) {
	t.Helper()
	app := test.NewApp()

	recipes := store.NewRecipeStore(t.TempDir())
	require.NoError(t, recipes.Load())

	args := navigation.ViewArgs{Nav: navigation.New()}
	editor := NewRecipeEditorView(args, recipes, config.NewSettings(app), NewLocalization(), notify)
	return editor, recipes
}

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.Ingredient
	}{
		{
			name: "quantity unit name",
			line: "200 g flour",
			want: model.Ingredient{Quantity: 200, Unit: "g", Name: "flour"},
		},
		{
			name: "quantity and bare name",
			line: "2 eggs",
			want: model.Ingredient{Quantity: 2, Name: "eggs"},
		},
		{
			name: "multi word name",
			line: "1 tbsp olive oil",
			want: model.Ingredient{Quantity: 1, Unit: "tbsp", Name: "olive oil"},
		},
		{
			name: "fractional quantity",
			line: "0.5 l milk",
			want: model.Ingredient{Quantity: 0.5, Unit: "l", Name: "milk"},
		},
		{
			name: "trailing note",
			line: "200 g flour (sifted)",
			want: model.Ingredient{Quantity: 200, Unit: "g", Name: "flour", Note: "sifted"},
		},
		{
			name: "unmeasured",
			line: "salt",
			want: model.Ingredient{Name: "salt"},
		},
		{
			name: "unmeasured with note",
			line: "salt (to taste)",
			want: model.Ingredient{Name: "salt", Note: "to taste"},
		},
		{
			name: "no quantity keeps whole line",
			line: "juice of one lemon",
			want: model.Ingredient{Name: "juice of one lemon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIngredientLine(tt.line))
		})
	}
}

func TestParseIngredients(t *testing.T) {
	ingredients := parseIngredients("• 200 g flour\n\n  2 eggs  \n")

	require.Len(t, ingredients, 2)
	assert.Equal(t, "flour", ingredients[0].Name)
	assert.Equal(t, float64(2), ingredients[1].Quantity)
	assert.Equal(t, "eggs", ingredients[1].Name)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 4, parseCount("4", 2))
	assert.Equal(t, 4, parseCount("  4  ", 2))
	assert.Equal(t, 0, parseCount("0", 2))
	assert.Equal(t, 2, parseCount("", 2))
	assert.Equal(t, 2, parseCount("abc", 2))
	assert.Equal(t, 2, parseCount("-3", 2))
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"vegan", "quick"}, parseTags("vegan, quick"))
	assert.Nil(t, parseTags("  ,, "))
}

func TestParseLines(t *testing.T) {
	assert.Equal(t, []string{"Mix", "Fry"}, parseLines("Mix\n\n  Fry  \n"))
	assert.Nil(t, parseLines("\n \n"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "", formatMinutes(0))
	assert.Equal(t, "", formatMinutes(-5))
	assert.Equal(t, "25", formatMinutes(25))
}

func TestRecipeEditorView_DirtyTracking(t *testing.T) {
	editor, _ := newTestEditor(t, nil)

	assert.False(t, editor.dirty(), "a fresh form starts clean")
	assert.True(t, editor.BeforeNavigateFrom("/recipes", nil))

	editor.titleEntry.SetText("Pancakes")
	assert.True(t, editor.dirty())

	// Without a window there is no dialog to ask on, so the veto steps aside
	assert.True(t, editor.BeforeNavigateFrom("/recipes", nil))

	editor.loadBlank()
	assert.False(t, editor.dirty(), "reloading the blank form resets dirty tracking")
}

func TestRecipeEditorView_Save_CreatesRecipe(t *testing.T) {
	editor, recipes := newTestEditor(t, nil)

	editor.titleEntry.SetText("Pancakes")
	editor.descriptionEntry.SetText("Weekend breakfast")
	editor.servingsEntry.SetText("4")
	editor.prepEntry.SetText("10")
	editor.cookEntry.SetText("20")
	editor.tagsEntry.SetText("breakfast, sweet")
	editor.ingredientsEntry.SetText("200 g flour\n2 eggs\n0.3 l milk")
	editor.stepsEntry.SetText("Mix everything\nFry in butter")

	editor.onSave()

	require.Equal(t, 1, recipes.Count())
	recipe := recipes.List()[0]
	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, "Pancakes", recipe.Title)
	assert.Equal(t, 4, recipe.Servings)
	assert.Equal(t, 30, recipe.TotalMinutes())
	assert.Equal(t, []string{"breakfast", "sweet"}, recipe.Tags)
	assert.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, []string{"Mix everything", "Fry in butter"}, recipe.Steps)
	assert.False(t, editor.dirty(), "a successful save marks the form clean")
}

func TestRecipeEditorView_Save_RequiresTitle(t *testing.T) {
	var notified string
	editor, recipes := newTestEditor(t, func(message string) { notified = message })

	editor.titleEntry.SetText("   ")
	editor.onSave()

	assert.Equal(t, 0, recipes.Count())
	assert.Equal(t, editor.localization.GetText(KeyTitleRequired), notified)
}

func TestRecipeEditorView_Save_UpdatesExisting(t *testing.T) {
	editor, recipes := newTestEditor(t, nil)

	original := &model.Recipe{Title: "Pancakes", Servings: 2}
	require.NoError(t, recipes.Add(original))

	editor.AfterNavigateTo("/recipes/"+original.ID+"/edit", map[string]string{"id": original.ID})
	assert.False(t, editor.dirty(), "loading a recipe starts clean")
	assert.Equal(t, "Pancakes", editor.titleEntry.Text)
	assert.Equal(t, "2", editor.servingsEntry.Text)

	editor.titleEntry.SetText("Blini")
	editor.onSave()

	require.Equal(t, 1, recipes.Count())
	updated, ok := recipes.Get(original.ID)
	require.True(t, ok)
	assert.Equal(t, "Blini", updated.Title)
}

func TestRecipeEditorView_AfterNavigateTo_UnknownID(t *testing.T) {
	editor, _ := newTestEditor(t, nil)

	editor.titleEntry.SetText("leftover text")
	editor.AfterNavigateTo("/recipes/missing/edit", map[string]string{"id": "missing"})

	assert.Empty(t, editor.titleEntry.Text, "an unknown id falls back to the blank form")
	assert.False(t, editor.dirty())
}
