package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/recipes"
	settings.SetDataDirectory(customDir)

	retrievedDir := settings.GetDataDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, retrievedDir)
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)

	retrievedDir := settings.GetExportDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestDefaultServings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	servings := settings.GetDefaultServings()
	if servings != DefaultServingsCount {
		t.Errorf("Expected default servings %d, got %d", DefaultServingsCount, servings)
	}

	// Test setting custom value
	settings.SetDefaultServings(6)

	retrievedServings := settings.GetDefaultServings()
	if retrievedServings != 6 {
		t.Errorf("Expected servings 6, got %d", retrievedServings)
	}

	// Test boundary values
	settings.SetDefaultServings(0) // Should be clamped to 1
	if settings.GetDefaultServings() != MinServings {
		t.Errorf("Servings should be clamped to minimum %d", MinServings)
	}

	settings.SetDefaultServings(50) // Should be clamped to 12
	if settings.GetDefaultServings() != MaxServings {
		t.Errorf("Servings should be clamped to maximum %d", MaxServings)
	}
}

func TestWeekStart(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	day := settings.GetWeekStart()
	if day != DefaultWeekStart {
		t.Errorf("Expected default week start %s, got %s", DefaultWeekStart, day)
	}

	// Sunday is weekday zero and must still round-trip
	settings.SetWeekStart(time.Sunday)
	if settings.GetWeekStart() != time.Sunday {
		t.Errorf("Expected week start Sunday, got %s", settings.GetWeekStart())
	}

	// Out of range values fall back to the default
	settings.SetWeekStart(time.Weekday(9))
	if settings.GetWeekStart() != DefaultWeekStart {
		t.Errorf("Expected invalid week start to fall back to %s, got %s", DefaultWeekStart, settings.GetWeekStart())
	}
}

func TestGetWeekStartOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetWeekStartOptions()
	expectedOptions := []time.Weekday{time.Monday, time.Saturday, time.Sunday}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d week start options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Week start option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestConfirmDiscard(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetConfirmDiscard() != DefaultConfirmDiscard {
		t.Errorf("Expected default confirm discard %v", DefaultConfirmDiscard)
	}

	// Test setting custom value
	settings.SetConfirmDiscard(false)
	if settings.GetConfirmDiscard() {
		t.Error("Expected confirm discard to be disabled")
	}
}
