package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconClose    = "×"
	IconError    = "❌"
	IconDone     = "✅"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (FileRow / lists)
const (
	StatusLabelWidth float32 = 96

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// Supported model file extensions for the file picker
var (
	ModelFileExtensions = []string{".aivis", ".json"}
)
