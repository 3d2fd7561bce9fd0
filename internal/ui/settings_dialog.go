package ui

import (
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/navigation"
)

// SettingsView is the settings form shown as a modal route. The route does
// not reuse instances, so a fresh view loads the stored values on every show.
type SettingsView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	nav          *navigation.Service
	settings     *config.Settings
	localization *Localization
	dismiss      func()
	onSaved      func()

	// selection orders backing the select widgets
	weekStartDays []time.Weekday
	languageCodes []string

	// UI components
	content         *fyne.Container
	dataDirEntry    *widget.Entry
	exportDirEntry  *widget.Entry
	servingsEntry   *widget.Entry
	weekStartSelect *widget.Select
	languageSelect  *widget.Select
	confirmCheck    *widget.Check
}

// NewSettingsView creates the settings view. The onSaved callback runs after
// a successful save so the shell can apply language changes and confirm.
func NewSettingsView(args navigation.ViewArgs, settings *config.Settings, localization *Localization, onSaved func()) *SettingsView {
	v := &SettingsView{
		nav:          args.Nav,
		settings:     settings,
		localization: localization,
		onSaved:      onSaved,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	v.loadCurrentSettings()
	return v
}

// SetDismiss receives the func that closes the hosting modal
func (v *SettingsView) SetDismiss(dismiss func()) {
	v.dismiss = dismiss
}

// createUI creates the settings form
func (v *SettingsView) createUI() {
	l := v.localization

	// Recipe directory selection
	v.dataDirEntry = widget.NewEntry()
	browseDataButton := widget.NewButton(l.GetText(KeyBrowse), func() {
		v.browseDirectory(v.dataDirEntry)
	})
	dataDirRow := container.NewBorder(nil, nil, nil, browseDataButton, v.dataDirEntry)

	// Export directory selection
	v.exportDirEntry = widget.NewEntry()
	browseExportButton := widget.NewButton(l.GetText(KeyBrowse), func() {
		v.browseDirectory(v.exportDirEntry)
	})
	exportDirRow := container.NewBorder(nil, nil, nil, browseExportButton, v.exportDirEntry)

	// Default servings
	v.servingsEntry = widget.NewEntry()
	v.servingsEntry.SetPlaceHolder(strconv.Itoa(config.DefaultServingsCount))

	// Week start day
	v.weekStartDays = v.settings.GetWeekStartOptions()
	weekStartOptions := make([]string, len(v.weekStartDays))
	for i, day := range v.weekStartDays {
		weekStartOptions[i] = l.WeekdayText(day)
	}
	v.weekStartSelect = widget.NewSelect(weekStartOptions, nil)

	// Language selection
	languageLabels := v.settings.GetLanguageOptions()
	v.languageCodes = []string{"system", "en", "ru", "pt"}
	languageOptions := make([]string, len(v.languageCodes))
	for i, code := range v.languageCodes {
		languageOptions[i] = languageLabels[code]
	}
	v.languageSelect = widget.NewSelect(languageOptions, nil)

	// Discard confirmation toggle
	v.confirmCheck = widget.NewCheck(l.GetText(KeyConfirmDiscard), nil)

	saveButton := widget.NewButton(l.GetText(KeySave), v.onSave)
	saveButton.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewLabel(l.GetText(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(l.GetText(KeyDefaultServings)+":"),
		v.servingsEntry,

		widget.NewLabel(l.GetText(KeyWeekStart)+":"),
		v.weekStartSelect,

		widget.NewSeparator(),

		widget.NewLabel(IconLanguage+" "+l.GetText(KeyLanguage)+":"),
		v.languageSelect,

		v.confirmCheck,

		widget.NewSeparator(),
		saveButton,
	)

	// Transparent spacer keeps the modal at a usable size
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(SettingsWidth, SettingsHeight))
	v.content = container.NewStack(spacer, container.NewScroll(form))
}

// loadCurrentSettings loads current settings into the UI
func (v *SettingsView) loadCurrentSettings() {
	v.dataDirEntry.SetText(v.settings.GetDataDirectory())
	v.exportDirEntry.SetText(v.settings.GetExportDirectory())
	v.servingsEntry.SetText(strconv.Itoa(v.settings.GetDefaultServings()))
	v.weekStartSelect.SetSelected(v.localization.WeekdayText(v.settings.GetWeekStart()))
	v.languageSelect.SetSelected(v.settings.GetLanguageOptions()[v.settings.GetLanguage()])
	v.confirmCheck.SetChecked(v.settings.GetConfirmDiscard())
}

// browseDirectory handles directory browsing into the given entry
func (v *SettingsView) browseDirectory(entry *widget.Entry) {
	window := v.nav.Window()
	if window == nil {
		return
	}
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, window)
}

// onSave persists the form and closes the modal
func (v *SettingsView) onSave() {
	if v.dataDirEntry.Text != "" {
		v.settings.SetDataDirectory(v.dataDirEntry.Text)
	}
	if v.exportDirEntry.Text != "" {
		v.settings.SetExportDirectory(v.exportDirEntry.Text)
	}

	if v.servingsEntry.Text != "" {
		if servings, err := strconv.Atoi(v.servingsEntry.Text); err == nil {
			v.settings.SetDefaultServings(servings)
		}
	}

	if index := v.weekStartSelect.SelectedIndex(); index >= 0 && index < len(v.weekStartDays) {
		v.settings.SetWeekStart(v.weekStartDays[index])
	}

	if index := v.languageSelect.SelectedIndex(); index >= 0 && index < len(v.languageCodes) {
		v.settings.SetLanguage(v.languageCodes[index])
	}

	v.settings.SetConfirmDiscard(v.confirmCheck.Checked)

	if v.onSaved != nil {
		v.onSaved()
	}
	if v.dismiss != nil {
		v.dismiss()
	}
}

// CreateRenderer creates the widget renderer
func (v *SettingsView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
