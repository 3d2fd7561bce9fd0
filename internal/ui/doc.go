package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It declares the route table, renders recipes, the weekly planner, and the
// shopping list, and wires store changes back into the views. All UI strings
// are localized via Localization.
