package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/navigation"
)

func newTestSettingsView(t *testing.T, onSaved func()) (*SettingsView, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	view := NewSettingsView(navigation.ViewArgs{Nav: navigation.New()}, settings, NewLocalization(), onSaved)
	return view, settings
}

func TestSettingsView_LoadsStoredValues(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetDefaultServings(6)
	settings.SetWeekStart(time.Sunday)
	settings.SetLanguage("ru")

	view := NewSettingsView(navigation.ViewArgs{Nav: navigation.New()}, settings, NewLocalization(), nil)

	assert.Equal(t, "6", view.servingsEntry.Text)
	assert.Equal(t, "Sunday", view.weekStartSelect.Selected)
	assert.Equal(t, "Русский", view.languageSelect.Selected)
	assert.True(t, view.confirmCheck.Checked)
}

func TestSettingsView_Save_AppliesValues(t *testing.T) {
	saved := false
	view, settings := newTestSettingsView(t, func() { saved = true })

	dismissed := false
	view.SetDismiss(func() { dismissed = true })

	view.servingsEntry.SetText("6")
	view.weekStartSelect.SetSelected(view.localization.WeekdayText(time.Sunday))
	view.languageSelect.SetSelected("Русский")
	view.confirmCheck.SetChecked(false)

	view.onSave()

	assert.True(t, saved, "onSaved must run after a save")
	assert.True(t, dismissed, "saving closes the modal")
	assert.Equal(t, 6, settings.GetDefaultServings())
	assert.Equal(t, time.Sunday, settings.GetWeekStart())
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.False(t, settings.GetConfirmDiscard())
}

func TestSettingsView_Save_IgnoresInvalidServings(t *testing.T) {
	view, settings := newTestSettingsView(t, nil)

	view.servingsEntry.SetText("lots")
	view.onSave()

	assert.Equal(t, config.DefaultServingsCount, settings.GetDefaultServings())
}
