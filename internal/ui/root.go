package ui

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/navigation"
	"github.com/mealfold/meal-planner/internal/platform"
	"github.com/mealfold/meal-planner/internal/store"
)

// StartRoute is where the app lands after startup
const StartRoute = "/recipes"

// mainSections are the route prefixes shown as primary content. Everything
// else mounts as a modal or overlay surface.
var mainSections = []string{"/recipes", "/planner", "/shopping"}

// RootUI owns the window shell: the sidebar, the main content slot, the
// menus, and the navigation service wiring between them. Routed views are
// created by the route factories; RootUI keeps references to the long-lived
// ones so store changes can fan out to whichever are built.
type RootUI struct {
	window fyne.Window

	settings     *config.Settings
	localization *Localization
	recipes      *store.RecipeStore
	plan         *store.PlanStore
	nav          *navigation.Service

	mainTarget *StackTarget
	sidebar    *Sidebar
	appTitle   *widget.Label

	// routed views retained for data refresh fan-out
	recipeList *RecipeListView
	planner    *PlannerView
	shopping   *ShoppingListView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, recipes *store.RecipeStore, plan *store.PlanStore) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the export directory exists so reveal-in-folder always has one
	platform.CreateDirectoryIfNotExists(settings.GetExportDirectory())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		recipes:      recipes,
		plan:         plan,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.nav = navigation.New(
		navigation.WithWindow(window),
		navigation.WithLogger(slog.Default()),
		navigation.WithCloseLabel(localization.GetText(KeyClose)),
	)
	navigation.SetDefault(ui.nav)

	ui.mainTarget = NewStackTarget()
	ui.nav.BindContext(navigation.DefaultContext, ui.mainTarget)

	ui.registerRoutes()
	log.Printf("RootUI initialized with %d routes", len(ui.nav.Routes()))

	// Fan store changes out to the views
	recipes.SetUpdateCallback(ui.onRecipesChanged)
	plan.SetUpdateCallback(ui.onPlanChanged)

	ui.setupUI()

	if !ui.nav.NavigateTo(StartRoute, nil) {
		log.Printf("Failed to show start route %s", StartRoute)
	}
	return ui
}

// registerRoutes declares the full route table of the application
func (ui *RootUI) registerRoutes() {
	l := ui.localization

	ui.register("/recipes", func(args navigation.ViewArgs) fyne.CanvasObject {
		ui.recipeList = NewRecipeListView(args, ui.recipes, ui.localization)
		return ui.recipeList
	}, navigation.KindMain, navigation.WithTitle(l.GetText(KeyNavRecipes)))

	ui.register("/recipes/add", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewRecipeEditorView(args, ui.recipes, ui.settings, ui.localization, ui.showToast)
	}, navigation.KindMain, navigation.WithTitle(l.GetText(KeyNewRecipe)))

	ui.register("/recipes/{id}", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewRecipeDetailView(args, ui.recipes, ui.plan, ui.settings, ui.localization, ui.showToast)
	}, navigation.KindMain)

	ui.register("/recipes/{id}/edit", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewRecipeEditorView(args, ui.recipes, ui.settings, ui.localization, ui.showToast)
	}, navigation.KindMain, navigation.WithTitle(l.GetText(KeyEditRecipe)))

	ui.register("/recipes/{id}/card", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewRecipeCardView(args, ui.recipes, ui.localization)
	}, navigation.KindEmbedded)

	ui.register("/planner", func(args navigation.ViewArgs) fyne.CanvasObject {
		ui.planner = NewPlannerView(args, ui.recipes, ui.plan, ui.settings, ui.localization, ui.showToast)
		return ui.planner
	}, navigation.KindMain, navigation.WithTitle(l.GetText(KeyNavPlanner)))

	ui.register("/shopping", func(args navigation.ViewArgs) fyne.CanvasObject {
		ui.shopping = NewShoppingListView(args, ui.recipes, ui.plan, ui.settings, ui.localization, ui.showToast)
		return ui.shopping
	}, navigation.KindMain, navigation.WithTitle(l.GetText(KeyNavShopping)))

	ui.register("/recipe-picker", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewRecipePickerView(args, ui.recipes, ui.localization)
	}, navigation.KindModal, navigation.WithTitle(l.GetText(KeyPickRecipe)))

	ui.register("/settings", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewSettingsView(args, ui.settings, ui.localization, ui.onSettingsSaved)
	}, navigation.KindModal, navigation.WithTitle(l.GetText(KeySettings)))

	ui.register("/help", func(args navigation.ViewArgs) fyne.CanvasObject {
		return NewHelpOverlayView(ui.localization)
	}, navigation.KindOverlay)
}

func (ui *RootUI) register(path string, factory navigation.ViewFactory, kind navigation.ViewKind, opts ...navigation.RouteOption) {
	if _, err := ui.nav.Register(path, factory, kind, opts...); err != nil {
		log.Printf("Failed to register route %s: %v", path, err)
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.sidebar = NewSidebar(ui.nav, ui.localization)

	ui.appTitle = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.appTitle.TextStyle = fyne.TextStyle{Bold: true}

	// Create branding header above the sidebar
	var header fyne.CanvasObject = ui.appTitle
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, ui.appTitle)
	}

	left := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		ui.sidebar,
	)

	content := container.NewBorder(nil, nil, left, nil, ui.mainTarget.Container())
	ui.window.SetContent(content)

	log.Printf("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), func() {
		ui.nav.NavigateTo("/settings", nil)
	})
	quitItem := fyne.NewMenuItem(l.GetText(KeyQuit), func() {
		fyne.CurrentApp().Quit()
	})
	quitItem.IsQuit = true
	fileMenu := fyne.NewMenu(l.GetText(KeyMenuFile),
		settingsItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	navigateMenu := fyne.NewMenu(l.GetText(KeyMenuNavigate),
		fyne.NewMenuItem(l.GetText(KeyNavRecipes), func() { ui.nav.NavigateTo("/recipes", nil) }),
		fyne.NewMenuItem(l.GetText(KeyNavPlanner), func() { ui.nav.NavigateTo("/planner", nil) }),
		fyne.NewMenuItem(l.GetText(KeyNavShopping), func() { ui.nav.NavigateTo("/shopping", nil) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyBack), func() { ui.nav.GoBack(navigation.DefaultContext) }),
		fyne.NewMenuItem(l.GetText(KeyForward), func() { ui.nav.GoForward(navigation.DefaultContext) }),
	)

	// Language submenu with the current language marked
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	availableLanguages := l.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})
		if l.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	helpMenu := fyne.NewMenu(l.GetText(KeyMenuHelp),
		fyne.NewMenuItem(l.GetText(KeyHelpTitle), func() { ui.nav.NavigateTo("/help", nil) }),
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, navigateMenu, languageMenu, helpMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	// The week start preference feeds the planner grid
	if ui.planner != nil {
		ui.planner.RefreshData()
	}

	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

// refreshUITexts updates the shell with the current language and rebuilds the
// visible view in place. Cached views are dropped so later navigations come
// back localized too.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.appTitle.SetText(ui.localization.GetText(KeyAppTitle))
	ui.sidebar.RefreshTexts()

	ui.nav.CloseOverlays()
	ui.nav.ResetInstances()
	ui.reshowCurrent()
}

// reshowCurrent re-navigates to the current history entry so the fresh,
// localized instance replaces the one on screen. Skipped when the pointer
// sits on a modal entry; those surfaces are rebuilt on their next show.
func (ui *RootUI) reshowCurrent() {
	ctx, ok := ui.nav.Context(navigation.DefaultContext)
	if !ok {
		return
	}
	entry, ok := ctx.Stack.Current()
	if !ok {
		return
	}
	if !isMainSection(entry.Path) {
		return
	}
	ui.nav.NavigateTo(entry.Path, entry.Params, navigation.ReplaceCurrent())
}

func isMainSection(path string) bool {
	for _, section := range mainSections {
		if path == section || strings.HasPrefix(path, section+"/") {
			return true
		}
	}
	return false
}

// onRecipesChanged fans a recipe store change out to every view rendering
// recipe data. The directory watcher delivers on its own goroutine; fyne.Do
// hops onto the UI thread.
func (ui *RootUI) onRecipesChanged() {
	log.Printf("Recipe store changed, refreshing views")
	fyne.Do(func() {
		if ui.recipeList != nil {
			ui.recipeList.RefreshData()
		}
		if ui.planner != nil {
			ui.planner.RefreshData()
		}
		if ui.shopping != nil {
			ui.shopping.Rebuild()
		}
	})
}

// onPlanChanged keeps the planner grid and the shopping list in step with
// the week plan
func (ui *RootUI) onPlanChanged() {
	fyne.Do(func() {
		if ui.planner != nil {
			ui.planner.RefreshData()
		}
		if ui.shopping != nil {
			ui.shopping.PlanChanged()
		}
	})
}

// showToast shows a transient notification in the top-right corner of the
// window. Views receive it as their notify callback.
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	closeButton := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeButton.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeButton, label)
	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.ShowAtPosition(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))

	// Auto-hide after the configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}
