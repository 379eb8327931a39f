// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 5

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// Used to calculate available list height: listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// StatusBarHeight is the single row reserved at the bottom of the window.
	StatusBarHeight = 1

	// MinMeterWidth is the minimum width for a usable ratio meter.
	MinMeterWidth = 5

	// MinPaneCells is the smallest pane extent at which content is still
	// rendered instead of blanked.
	MinPaneCells = 3
)
