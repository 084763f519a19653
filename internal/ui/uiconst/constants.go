package uiconst

import "time"

// Table column widths
const (
	ColWidthCheckbox = 3  // "[x]"
	ColWidthID       = 6  // Member id
	ColWidthName     = 24 // Name column
	ColWidthEmail    = 32 // Email column
	ColWidthRole     = 10 // Role column
	ColWidthError    = 80 // Error message column
	ColWidthField    = 12 // Field name in detail views
	ColWidthValue    = 48 // Value in detail views
)

// Table height constants
const (
	TableHeightOffset  = 8  // Subtracted from terminal height: m.height - TableHeightOffset
	TableHeightDefault = 12 // Height used before the first WindowSizeMsg
	TableHeightMin     = 3
)

// Notification lifetimes.
const (
	ErrorNoticeDuration    = 4 * time.Second
	NotFoundNoticeDuration = 1 * time.Second
	InfoNoticeDuration     = 2 * time.Second
)

// Page size bounds for the +/- keys.
const (
	PageSizeStep = 5
	PageSizeMax  = 100
)
