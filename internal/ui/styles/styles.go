package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette is a set of text styles bound to a single output stream.
type Palette struct {
	// Error is used for diagnostic titles.
	Error lipgloss.Style

	// Success is used for confirmation messages.
	Success lipgloss.Style

	// Warning is used for prompts about destructive actions.
	Warning lipgloss.Style

	// Label is used for field names in detail views.
	Label lipgloss.Style

	// Muted is for hints and less important info.
	Muted lipgloss.Style

	plain bool
}

// For returns a palette that renders for w. Color is dropped when w is not
// a terminal or when plain is true.
func For(w io.Writer, plain bool) *Palette {
	r := lipgloss.NewRenderer(w)
	return &Palette{
		Error:   r.NewStyle().Foreground(Red).Bold(true),
		Success: r.NewStyle().Foreground(Green).Bold(true),
		Warning: r.NewStyle().Foreground(Yellow).Bold(true),
		Label:   r.NewStyle().Foreground(Gray).Bold(true),
		Muted:   r.NewStyle().Foreground(Muted),
		plain:   plain,
	}
}

// Render applies style to s unless the palette is plain.
func (p *Palette) Render(style lipgloss.Style, s string) string {
	if p == nil || p.plain {
		return s
	}
	return style.Render(s)
}
