package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/navigation"
)

// HelpOverlayView is the non-blocking quick help popup. It stays open while
// the user works; the close button dismisses it and reports the dismissal
// back to the navigation service.
type HelpOverlayView struct {
	widget.BaseWidget
	navigation.LifecycleBase

	localization *Localization
	dismiss      func()

	content *fyne.Container
}

// NewHelpOverlayView creates the help overlay view
func NewHelpOverlayView(localization *Localization) *HelpOverlayView {
	v := &HelpOverlayView{
		localization: localization,
	}
	v.ExtendBaseWidget(v)
	v.createUI()
	return v
}

// SetDismiss receives the func that closes the hosting popup
func (v *HelpOverlayView) SetDismiss(dismiss func()) {
	v.dismiss = dismiss
}

// createUI creates the overlay layout
func (v *HelpOverlayView) createUI() {
	titleLabel := widget.NewLabel(IconHelp + " " + v.localization.GetText(KeyHelpTitle))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	bodyLabel := widget.NewLabel(v.localization.GetText(KeyHelpBody))
	bodyLabel.Wrapping = fyne.TextWrapWord

	closeButton := widget.NewButton(v.localization.GetText(KeyClose), func() {
		if v.dismiss != nil {
			v.dismiss()
		}
	})

	body := container.NewVBox(titleLabel, widget.NewSeparator(), bodyLabel, closeButton)

	// Transparent spacer keeps the popup from collapsing to label width
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(HelpOverlayWidth, 0))
	v.content = container.NewStack(spacer, body)
}

// CreateRenderer creates the widget renderer
func (v *HelpOverlayView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}
