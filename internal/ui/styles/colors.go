// Package styles holds the color palette and text styles used when writing
// to a terminal. Styles are built against a renderer for the destination
// writer so that redirected output stays free of escape sequences.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Gray  = lipgloss.Color("#888888")
	Muted = lipgloss.Color("#555555")

	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)
