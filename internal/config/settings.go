package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/mealfold/meal-planner/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDataDir         = "data_directory"
	KeyExportDir       = "export_directory"
	KeyLanguage        = "app_language"
	KeyDefaultServings = "default_servings"
	KeyWeekStart       = "week_start_day"
	KeyConfirmDiscard  = "confirm_discard_changes"
)

// Default values
const (
	DefaultServingsCount  = 2
	MinServings           = 1
	MaxServings           = 12
	DefaultLanguage       = "system"
	DefaultWeekStart      = time.Monday
	DefaultConfirmDiscard = true
)

// weekStartUnset marks a preference that was never written; Sunday is 0, so
// the zero value cannot stand in for "unset"
const weekStartUnset = -1

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataDirectory returns the directory holding recipes and the week plan
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		// Use the standard documents location
		defaultDir, err := platform.DefaultDataDir()
		if err != nil {
			defaultDir = "/tmp/mealfold"
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetExportDirectory returns the directory shopping lists are exported to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/mealfold-exports"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetDefaultServings returns the serving count new planned meals start with
func (s *Settings) GetDefaultServings() int {
	value := s.app.Preferences().Int(KeyDefaultServings)
	if value <= 0 {
		s.SetDefaultServings(DefaultServingsCount)
		return DefaultServingsCount
	}
	return value
}

// SetDefaultServings sets the default serving count
func (s *Settings) SetDefaultServings(count int) {
	if count < MinServings {
		count = MinServings
	}
	if count > MaxServings {
		count = MaxServings
	}
	s.app.Preferences().SetInt(KeyDefaultServings, count)
}

// GetWeekStart returns the weekday the planner grid starts on
func (s *Settings) GetWeekStart() time.Weekday {
	value := s.app.Preferences().IntWithFallback(KeyWeekStart, weekStartUnset)
	if value < 0 || value > 6 {
		s.SetWeekStart(DefaultWeekStart)
		return DefaultWeekStart
	}
	return time.Weekday(value)
}

// SetWeekStart sets the weekday the planner grid starts on
func (s *Settings) SetWeekStart(day time.Weekday) {
	if day < time.Sunday || day > time.Saturday {
		day = DefaultWeekStart
	}
	s.app.Preferences().SetInt(KeyWeekStart, int(day))
}

// GetWeekStartOptions returns the supported week start days in display order
func (s *Settings) GetWeekStartOptions() []time.Weekday {
	return []time.Weekday{time.Monday, time.Saturday, time.Sunday}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetConfirmDiscard returns whether leaving an editor with unsaved changes
// asks for confirmation
func (s *Settings) GetConfirmDiscard() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDiscard, DefaultConfirmDiscard)
}

// SetConfirmDiscard sets whether unsaved changes ask for confirmation
func (s *Settings) SetConfirmDiscard(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDiscard, confirm)
}
