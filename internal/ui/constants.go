package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconRecipes   = "📖"
	IconPlanner   = "📅"
	IconShopping  = "🛒"
	IconHelp      = "❓"
	IconAdd       = "＋"
	IconEdit      = "✏"
	IconDelete    = "🗑"
	IconFolder    = "📁"
	IconClose     = "×"
	IconLanguage  = "🌐"
	IconBack      = "←"
	IconForward   = "→"
	IconBreakfast = "🍳"
	IconLunch     = "🥗"
	IconDinner    = "🍲"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	ServingsFormat     = "%d×"
)

// Layout sizing (recipe cards / lists / planner grid)
const (
	SidebarWidth  float32 = 180
	PreviewWidth  float32 = 280
	CardMinWidth  float32 = 150
	CardMinHeight float32 = 64
	PlannerCellW  float32 = 140
	PlannerCellH  float32 = 72
)

// Dialog and modal sizing
const (
	PickerDialogWidth  float32 = 460
	PickerDialogHeight float32 = 420
	EditorMinWidth     float32 = 520
	SettingsWidth      float32 = 480
	SettingsHeight     float32 = 420
	HelpOverlayWidth   float32 = 340
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 48
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
