package ui

import (
	"embed"
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/active.*.toml
var translationFiles embed.FS

// Message IDs for localization. Every ID must have an entry in
// translations/active.en.toml; the other languages fall back to English.
const (
	KeyAppTitle     = "app_title"
	KeyMenuFile     = "menu_file"
	KeyMenuNavigate = "menu_navigate"
	KeyMenuHelp     = "menu_help"
	KeyQuit         = "quit"
	KeySettings     = "settings"
	KeyLanguage     = "language"
	KeyNavRecipes   = "nav_recipes"
	KeyNavPlanner   = "nav_planner"
	KeyNavShopping  = "nav_shopping"
	KeyBack         = "back"
	KeyForward      = "forward"
	KeyClose        = "close"
	KeySave         = "save"
	KeyCancel       = "cancel"
	KeyEdit         = "edit"
	KeyDelete       = "delete"
	KeyBrowse       = "browse"

	KeySearchRecipes  = "search_recipes"
	KeyAddRecipe      = "add_recipe"
	KeyNoRecipes      = "no_recipes"
	KeyRecipesCount   = "recipes_count"
	KeyRecipeNotFound = "recipe_not_found"

	KeyServings     = "servings"
	KeyIngredients  = "ingredients"
	KeySteps        = "steps"
	KeyTags         = "tags"
	KeyPrepTime     = "prep_time"
	KeyCookTime     = "cook_time"
	KeyTotalTime    = "total_time"
	KeyMinutesShort = "minutes_short"

	KeyNewRecipe           = "new_recipe"
	KeyEditRecipe          = "edit_recipe"
	KeyTitleLabel          = "title_label"
	KeyDescriptionLabel    = "description_label"
	KeyIngredientsHint     = "ingredients_hint"
	KeyStepsHint           = "steps_hint"
	KeyTagsHint            = "tags_hint"
	KeyTitleRequired       = "title_required"
	KeyRecipeSaved         = "recipe_saved"
	KeyRecipeDeleted       = "recipe_deleted"
	KeyDeleteRecipeTitle   = "delete_recipe_title"
	KeyDeleteRecipeMessage = "delete_recipe_message"
	KeyDiscardTitle        = "discard_changes_title"
	KeyDiscardMessage      = "discard_changes_message"
	KeyDiscard             = "discard"
	KeyKeepEditing         = "keep_editing"

	KeyPickRecipe    = "pick_recipe"
	KeyClearWeek     = "clear_week"
	KeyRemoveMeal    = "remove_meal"
	KeyMealPlanned   = "meal_planned"
	KeySlotBreakfast = "slot_breakfast"
	KeySlotLunch     = "slot_lunch"
	KeySlotDinner    = "slot_dinner"

	KeyWeekdaySunday    = "weekday_sunday"
	KeyWeekdayMonday    = "weekday_monday"
	KeyWeekdayTuesday   = "weekday_tuesday"
	KeyWeekdayWednesday = "weekday_wednesday"
	KeyWeekdayThursday  = "weekday_thursday"
	KeyWeekdayFriday    = "weekday_friday"
	KeyWeekdaySaturday  = "weekday_saturday"

	KeyRebuildList    = "rebuild_list"
	KeyExportList     = "export_list"
	KeyRemainingItems = "remaining_items"
	KeyListEmpty      = "list_empty"
	KeyListExported   = "list_exported"
	KeyRevealInFolder = "reveal_in_folder"

	KeyDataDirectory   = "data_directory"
	KeyExportDirectory = "export_directory"
	KeyDefaultServings = "default_servings"
	KeyWeekStart       = "week_start"
	KeyConfirmDiscard  = "confirm_discard"
	KeySettingsSaved   = "settings_saved"

	KeyHelpTitle = "help_title"
	KeyHelpBody  = "help_body"

	KeyErrorSaving    = "error_saving"
	KeyErrorDeleting  = "error_deleting"
	KeyErrorExporting = "error_exporting"
)

// supportedLanguages pairs the codes offered in settings with the tags the
// locale matcher resolves against. The first entry is what unsupported
// locales resolve to.
var supportedLanguages = []struct {
	code string
	tag  language.Tag
	name string
}{
	{"en", language.English, "English"},
	{"ru", language.Russian, "Русский"},
	{"pt", language.Portuguese, "Português"},
}

// Localization manages UI text translations
type Localization struct {
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
	currentLanguage string
}

// NewLocalization creates a new localization manager with all embedded
// translation files loaded and English active
func NewLocalization() *Localization {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range supportedLanguages {
		path := "translations/active." + lang.code + ".toml"
		if _, err := bundle.LoadMessageFileFS(translationFiles, path); err != nil {
			log.Printf("Failed to load translation file %s: %v", path, err)
		}
	}

	l := &Localization{bundle: bundle}
	l.SetLanguage("en")
	return l
}

// SetLanguage sets the current language. "system" resolves the OS locale;
// unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	for _, supported := range supportedLanguages {
		if supported.code == lang {
			l.currentLanguage = lang
			l.localizer = i18n.NewLocalizer(l.bundle, lang, "en")
			return
		}
	}
}

// GetText returns localized text for the given message ID, falling back to
// English and finally to the ID itself
func (l *Localization) GetText(key string) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		if text != "" {
			return text
		}
		return key
	}
	return text
}

// GetTextData returns localized text with template data applied,
// e.g. GetTextData(KeyRecipesCount, map[string]any{"Count": 3})
func (l *Localization) GetTextData(key string, data map[string]any) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		if text != "" {
			return text
		}
		return key
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	languages := make(map[string]string, len(supportedLanguages))
	for _, lang := range supportedLanguages {
		languages[lang.code] = lang.name
	}
	return languages
}

// SlotText returns the localized name of a meal slot
func (l *Localization) SlotText(slot string) string {
	switch slot {
	case "Breakfast":
		return l.GetText(KeySlotBreakfast)
	case "Lunch":
		return l.GetText(KeySlotLunch)
	case "Dinner":
		return l.GetText(KeySlotDinner)
	default:
		return slot
	}
}

// WeekdayText returns the localized name of a weekday
func (l *Localization) WeekdayText(day time.Weekday) string {
	switch day {
	case time.Sunday:
		return l.GetText(KeyWeekdaySunday)
	case time.Monday:
		return l.GetText(KeyWeekdayMonday)
	case time.Tuesday:
		return l.GetText(KeyWeekdayTuesday)
	case time.Wednesday:
		return l.GetText(KeyWeekdayWednesday)
	case time.Thursday:
		return l.GetText(KeyWeekdayThursday)
	case time.Friday:
		return l.GetText(KeyWeekdayFriday)
	case time.Saturday:
		return l.GetText(KeyWeekdaySaturday)
	default:
		return day.String()
	}
}

// systemLanguage resolves the OS locale to a supported language code
func systemLanguage() string {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	if locale == "" {
		return supportedLanguages[0].code
	}

	// "ru_RU.UTF-8" -> "ru-RU"
	locale = strings.SplitN(locale, ".", 2)[0]
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return supportedLanguages[0].code
	}

	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = lang.tag
	}
	_, index, _ := language.NewMatcher(tags).Match(tag)
	return supportedLanguages[index].code
}
