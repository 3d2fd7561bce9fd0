package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "MealFold", l.GetText(KeyAppTitle))
	assert.Equal(t, "Recipes", l.GetText(KeyNavRecipes))
	assert.Equal(t, "Save", l.GetText(KeySave))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Сохранить", l.GetText(KeySave))
	assert.Equal(t, "Рецепты", l.GetText(KeyNavRecipes))

	l.SetLanguage("klingon")
	assert.Equal(t, "ru", l.GetCurrentLanguage(), "unknown codes must not change the language")

	l.SetLanguage("en")
	assert.Equal(t, "Save", l.GetText(KeySave))
}

func TestLocalization_SetLanguage_System(t *testing.T) {
	l := NewLocalization()

	t.Setenv("LC_ALL", "pt_BR.UTF-8")
	l.SetLanguage("system")
	assert.Equal(t, "pt", l.GetCurrentLanguage())

	t.Setenv("LC_ALL", "de_DE.UTF-8")
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage(), "unsupported locales resolve to English")
}

func TestLocalization_GetText_UnknownKey(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "no_such_message", l.GetText("no_such_message"))
}

func TestLocalization_GetTextData(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "5 recipes", l.GetTextData(KeyRecipesCount, map[string]any{"Count": 5}))

	l.SetLanguage("ru")
	assert.Equal(t, "Рецептов: 5", l.GetTextData(KeyRecipesCount, map[string]any{"Count": 5}))
}

func TestLocalization_SlotAndWeekdayText(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "Breakfast", l.SlotText("Breakfast"))
	assert.Equal(t, "Monday", l.WeekdayText(time.Monday))
	assert.Equal(t, "Snack", l.SlotText("Snack"), "unknown slots pass through unchanged")

	l.SetLanguage("ru")
	assert.Equal(t, "Завтрак", l.SlotText("Breakfast"))
	assert.Equal(t, "Понедельник", l.WeekdayText(time.Monday))
}

func TestLocalization_GetAvailableLanguages(t *testing.T) {
	languages := NewLocalization().GetAvailableLanguages()

	assert.Equal(t, "English", languages["en"])
	assert.Equal(t, "Русский", languages["ru"])
	assert.Equal(t, "Português", languages["pt"])
}
