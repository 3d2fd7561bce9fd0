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

func newTestRootUI(t *testing.T, seed ...*model.Recipe) *RootUI {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	// Point the export directory away from the real home directory
	settings := config.NewSettings(app)
	settings.SetExportDirectory(t.TempDir())

	dir := t.TempDir()
	recipes := store.NewRecipeStore(dir)
	require.NoError(t, recipes.Load())
	for _, recipe := range seed {
		require.NoError(t, recipes.Add(recipe))
	}

	plan := store.NewPlanStore(dir)
	require.NoError(t, plan.Load())

	return NewRootUI(window, app, recipes, plan)
}

func TestRootUI_StartsOnRecipeList(t *testing.T) {
	root := newTestRootUI(t, &model.Recipe{Title: "Pancakes", Servings: 2})

	ctx, ok := root.nav.Context(navigation.DefaultContext)
	require.True(t, ok)
	entry, ok := ctx.Stack.Current()
	require.True(t, ok)
	assert.Equal(t, StartRoute, entry.Path)

	require.NotNil(t, root.recipeList)
	assert.Len(t, root.recipeList.visible, 1)
}

func TestRootUI_RegistersAllRoutes(t *testing.T) {
	root := newTestRootUI(t)

	registered := make(map[string]bool)
	for _, route := range root.nav.Routes() {
		registered[route.Path] = true
	}

	for _, path := range []string{
		"/recipes",
		"/recipes/add",
		"/recipes/{id}",
		"/recipes/{id}/edit",
		"/recipes/{id}/card",
		"/planner",
		"/shopping",
		"/recipe-picker",
		"/settings",
		"/help",
	} {
		assert.True(t, registered[path], "route %s must be registered", path)
	}
}

func TestRootUI_SectionNavigation(t *testing.T) {
	root := newTestRootUI(t)

	require.True(t, root.nav.NavigateTo("/planner", nil))
	require.NotNil(t, root.planner)

	require.True(t, root.nav.NavigateTo("/shopping", nil))
	require.NotNil(t, root.shopping)

	require.True(t, root.nav.GoBack(navigation.DefaultContext))
	ctx, _ := root.nav.Context(navigation.DefaultContext)
	entry, ok := ctx.Stack.Current()
	require.True(t, ok)
	assert.Equal(t, "/planner", entry.Path)

	require.True(t, root.nav.GoForward(navigation.DefaultContext))
	entry, _ = ctx.Stack.Current()
	assert.Equal(t, "/shopping", entry.Path)
}

func TestRootUI_DetailRouteUsesConcretePath(t *testing.T) {
	recipe := &model.Recipe{Title: "Pancakes", Servings: 2}
	root := newTestRootUI(t, recipe)

	require.True(t, root.nav.NavigateTo("/recipes/"+recipe.ID, nil))

	ctx, _ := root.nav.Context(navigation.DefaultContext)
	entry, ok := ctx.Stack.Current()
	require.True(t, ok)
	assert.Equal(t, "/recipes/"+recipe.ID, entry.Path)
}

func TestRootUI_SettingsOpensAsModal(t *testing.T) {
	root := newTestRootUI(t)

	require.True(t, root.nav.NavigateTo("/settings", nil))
	assert.Contains(t, root.nav.OpenModals(), "/settings")
}

func TestRootUI_LanguageChangeRebuildsShell(t *testing.T) {
	root := newTestRootUI(t)

	root.onLanguageChange("ru")

	assert.Equal(t, "ru", root.settings.GetLanguage())
	assert.Equal(t, "ru", root.localization.GetCurrentLanguage())
	assert.Contains(t, root.sidebar.routes[0].button.Text, "Рецепты")
	assert.Equal(t, "Рецептов: 0", root.recipeList.countLabel.Text,
		"the visible view is rebuilt in the new language")
}
