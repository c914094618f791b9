package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the URL column is hidden
	// even when enabled.
	LayoutCompactWidth = 100

	// idColumnWidth fits "#" plus a five-digit id.
	idColumnWidth = 7
)

// Log overlay limits.
const (
	// LogOverlayLines is how many lines of the log file the overlay reads.
	LogOverlayLines = 200
)

// Timing constants.
const (
	// DefaultUIInterval refreshes relative timestamps and the log overlay.
	DefaultUIInterval = time.Second
)
