package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/navigation"
)

// sidebarRoute pairs a navigation target with its button
type sidebarRoute struct {
	path   string
	icon   string
	key    string
	button *widget.Button
}

// Sidebar is the navigation rail on the left edge of the window. It
// highlights the active section and exposes history controls.
type Sidebar struct {
	widget.BaseWidget

	nav          *navigation.Service
	localization *Localization

	content        *fyne.Container
	routes         []*sidebarRoute
	backButton     *widget.Button
	forwardButton  *widget.Button
	settingsButton *widget.Button
	helpButton     *widget.Button
}

// NewSidebar creates the sidebar and keeps it in sync with navigation
func NewSidebar(nav *navigation.Service, localization *Localization) *Sidebar {
	s := &Sidebar{
		nav:          nav,
		localization: localization,
	}
	s.ExtendBaseWidget(s)
	s.createUI()

	nav.Subscribe(navigation.EventRouteChanged, func(event navigation.Event) {
		if event.Context != navigation.DefaultContext {
			return
		}
		s.highlightRoute(event.Path)
		s.updateHistoryButtons()
	})

	return s
}

// createUI creates the sidebar layout
func (s *Sidebar) createUI() {
	l := s.localization

	entries := []struct {
		path string
		icon string
		key  string
	}{
		{"/recipes", IconRecipes, KeyNavRecipes},
		{"/planner", IconPlanner, KeyNavPlanner},
		{"/shopping", IconShopping, KeyNavShopping},
	}

	navBox := container.NewVBox()
	for _, entry := range entries {
		path := entry.path
		button := widget.NewButton(entry.icon+" "+l.GetText(entry.key), func() {
			s.nav.NavigateTo(path, nil)
		})
		s.routes = append(s.routes, &sidebarRoute{
			path:   entry.path,
			icon:   entry.icon,
			key:    entry.key,
			button: button,
		})
		navBox.Add(button)
	}

	s.backButton = widget.NewButton(IconBack, func() {
		s.nav.GoBack(navigation.DefaultContext)
	})
	s.forwardButton = widget.NewButton(IconForward, func() {
		s.nav.GoForward(navigation.DefaultContext)
	})
	historyRow := container.NewGridWithColumns(2, s.backButton, s.forwardButton)

	s.settingsButton = widget.NewButton(IconSettings+" "+l.GetText(KeySettings), func() {
		s.nav.NavigateTo("/settings", nil)
	})
	s.helpButton = widget.NewButton(IconHelp+" "+l.GetText(KeyHelpTitle), func() {
		s.nav.NavigateTo("/help", nil)
	})

	bottom := container.NewVBox(
		widget.NewSeparator(),
		s.settingsButton,
		s.helpButton,
	)

	body := container.NewBorder(
		container.NewVBox(historyRow, widget.NewSeparator(), navBox),
		bottom,
		nil, nil,
	)

	// Transparent spacer pins the rail to a fixed width
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(SidebarWidth, 0))
	s.content = container.NewStack(spacer, body)

	s.updateHistoryButtons()
}

// highlightRoute marks the button whose section contains the given path.
// Paths outside every section, such as modal routes, keep the current mark.
func (s *Sidebar) highlightRoute(path string) {
	matched := false
	for _, route := range s.routes {
		if path == route.path || strings.HasPrefix(path, route.path+"/") {
			matched = true
			break
		}
	}
	if !matched {
		return
	}

	for _, route := range s.routes {
		active := path == route.path || strings.HasPrefix(path, route.path+"/")
		importance := widget.MediumImportance
		if active {
			importance = widget.HighImportance
		}
		if route.button.Importance != importance {
			route.button.Importance = importance
			route.button.Refresh()
		}
	}
}

// updateHistoryButtons syncs the back and forward buttons with the history
func (s *Sidebar) updateHistoryButtons() {
	if s.nav.CanGoBack(navigation.DefaultContext) {
		s.backButton.Enable()
	} else {
		s.backButton.Disable()
	}
	if s.nav.CanGoForward(navigation.DefaultContext) {
		s.forwardButton.Enable()
	} else {
		s.forwardButton.Disable()
	}
}

// RefreshTexts reapplies localized labels after a language change
func (s *Sidebar) RefreshTexts() {
	l := s.localization
	for _, route := range s.routes {
		route.button.SetText(route.icon + " " + l.GetText(route.key))
	}
	s.settingsButton.SetText(IconSettings + " " + l.GetText(KeySettings))
	s.helpButton.SetText(IconHelp + " " + l.GetText(KeyHelpTitle))
}

// CreateRenderer creates the widget renderer
func (s *Sidebar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}
