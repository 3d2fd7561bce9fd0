package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mealfold/meal-planner/internal/config"
	"github.com/mealfold/meal-planner/internal/store"
	"github.com/mealfold/meal-planner/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mealfold.meal-planner"
	AppName = "MealFold"

	WindowWidth  = 1000
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize stores
	settings := config.NewSettings(myApp)
	dataDir := settings.GetDataDirectory()

	recipes := store.NewRecipeStore(dataDir)
	if err := recipes.Load(); err != nil {
		log.Printf("Failed to load recipes from %s: %v", dataDir, err)
	}
	if err := recipes.Watch(); err != nil {
		log.Printf("Recipe directory watcher unavailable: %v", err)
	}

	plan := store.NewPlanStore(dataDir)
	if err := plan.Load(); err != nil {
		log.Printf("Failed to load week plan from %s: %v", dataDir, err)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, recipes, plan)

	// Show and run
	myWindow.ShowAndRun()

	if err := recipes.Close(); err != nil {
		log.Printf("Failed to stop recipe watcher: %v", err)
	}
}
