package model

// Package model defines domain data structures used across the app: recipes,
// ingredients, the weekly meal plan, shopping lists, and slot enums. Structures
// are designed for direct binding in the UI and for TOML file storage.
