package ui

// Screen rows outside the table pane: header, controls, footer, key hints.
const chromeRows = 4

// Table pane limits.
const (
	// minTableRows is the smallest table height, header row included.
	minTableRows = 3

	// defaultTableRows is used before the first WindowSizeMsg arrives.
	defaultTableRows = 12
)

// LayoutCompactWidth is the width below which the header drops secondary
// details.
const LayoutCompactWidth = 80

// helpModalWidth is the width of the help overlay.
const helpModalWidth = 64
