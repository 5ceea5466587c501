package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the compact
	// detail projection replaces the primary one.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width for the two-column detail
	// layout with the related strip alongside.
	LayoutWideWidth = 140
)

// Catalog list sizing.
const (
	// catalogNameWidth bounds product names in the list.
	catalogNameWidth = 48

	// catalogRowLimit bounds how many rows render per screen before
	// scrolling.
	catalogRowLimit = 20
)
