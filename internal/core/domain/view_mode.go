package domain

import "strings"

// ViewMode selects the column arrangement of the listing page.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// ParseViewMode returns grid for empty or unknown input.
func ParseViewMode(s string) ViewMode {
	if ViewMode(strings.ToLower(strings.TrimSpace(s))) == ViewModeList {
		return ViewModeList
	}
	return ViewModeGrid
}

func (m ViewMode) String() string { return string(m) }

// Toggle returns the other mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewModeList {
		return ViewModeGrid
	}
	return ViewModeList
}

// ColumnClasses are the grid utility classes for the mode.
func (m ViewMode) ColumnClasses() string {
	if m == ViewModeList {
		return "grid-cols-1"
	}
	return "grid-cols-1 sm:grid-cols-2 lg:grid-cols-3"
}
