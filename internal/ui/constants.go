package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the
// codebase.

// Icons (emojis/symbols) for actions without a stock theme icon
const (
	IconAddBookmark = "☆"
	IconBookmarks   = "★"
	IconDownloads   = "⇩"
	IconSettings    = "⚙"
	IconAbout       = "ℹ"
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	WindowTitleFormat   = "%s — %s"
)

// Layout sizing
const (
	ProgressBarWidth float32 = 150
	DialogMinWidth   float32 = 420
	DialogMinHeight  float32 = 300
)

// URL bar suggestion behavior
const (
	SuggestDebounce  = 150 * time.Millisecond
	SuggestLimit     = 6
	SuggestMinLength = 2
)
