package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconAdd      = "+"
	IconExport   = "💾"
	IconLanguage = "🌐"
)

// Window sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 640
)

// Layout sizing
const (
	ResolutionEntryWidth float32 = 90
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360

	MapColumns = 3
)
