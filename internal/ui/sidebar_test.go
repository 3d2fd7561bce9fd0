package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealfold/meal-planner/internal/navigation"
)

func newTestSidebar(t *testing.T) (*navigation.Service, *Sidebar) {
	t.Helper()
	_ = test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	svc := navigation.New(navigation.WithWindow(window))
	svc.BindContext(navigation.DefaultContext, NewStackTarget())

	for _, path := range []string{"/recipes", "/planner", "/shopping"} {
		_, err := svc.Register(path, func(args navigation.ViewArgs) fyne.CanvasObject {
			return widget.NewLabel(path)
		}, navigation.KindMain)
		require.NoError(t, err)
	}
	_, err := svc.Register("/settings", func(args navigation.ViewArgs) fyne.CanvasObject {
		return widget.NewLabel("settings")
	}, navigation.KindModal)
	require.NoError(t, err)

	return svc, NewSidebar(svc, NewLocalization())
}

func TestSidebar_HighlightFollowsNavigation(t *testing.T) {
	svc, sidebar := newTestSidebar(t)

	require.True(t, svc.NavigateTo("/recipes", nil))
	assert.Equal(t, widget.HighImportance, sidebar.routes[0].button.Importance)
	assert.Equal(t, widget.MediumImportance, sidebar.routes[1].button.Importance)

	require.True(t, svc.NavigateTo("/planner", nil))
	assert.Equal(t, widget.MediumImportance, sidebar.routes[0].button.Importance)
	assert.Equal(t, widget.HighImportance, sidebar.routes[1].button.Importance)
}

func TestSidebar_ModalPathsKeepHighlight(t *testing.T) {
	svc, sidebar := newTestSidebar(t)

	require.True(t, svc.NavigateTo("/recipes", nil))
	require.True(t, svc.NavigateTo("/settings", nil))

	assert.Equal(t, widget.HighImportance, sidebar.routes[0].button.Importance,
		"modal routes leave the section highlight in place")
}

func TestSidebar_HistoryButtonsTrackStack(t *testing.T) {
	svc, sidebar := newTestSidebar(t)

	require.True(t, svc.NavigateTo("/recipes", nil))
	assert.True(t, sidebar.backButton.Disabled())
	assert.True(t, sidebar.forwardButton.Disabled())

	require.True(t, svc.NavigateTo("/planner", nil))
	assert.False(t, sidebar.backButton.Disabled())
	assert.True(t, sidebar.forwardButton.Disabled())

	require.True(t, svc.GoBack(navigation.DefaultContext))
	assert.True(t, sidebar.backButton.Disabled())
	assert.False(t, sidebar.forwardButton.Disabled())
}

func TestSidebar_RefreshTexts(t *testing.T) {
	_, sidebar := newTestSidebar(t)

	sidebar.localization.SetLanguage("ru")
	sidebar.RefreshTexts()

	assert.Contains(t, sidebar.routes[0].button.Text, "Рецепты")
}
