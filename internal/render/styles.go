package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles holds the styles of one renderer. Styles are bound to the
// renderer's color profile.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Box      lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Cell     lipgloss.Style
	Row      lipgloss.Style
	Header   lipgloss.Style
	Error    lipgloss.Style
	Code     lipgloss.Style
	Help     lipgloss.Style
	OK       lipgloss.Style
}

// NewStyles builds the styles for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Subtitle: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),

		Label: r.NewStyle().
			Foreground(colorMuted),

		Value: r.NewStyle().
			Foreground(colorSecondary).
			Bold(true),

		Cell: r.NewStyle().
			Align(lipgloss.Right),

		Row: r.NewStyle().
			Padding(0, 1),

		Header: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1),

		Error: r.NewStyle().
			Foreground(colorError),

		Code: r.NewStyle().
			Foreground(colorAccent).
			Bold(true),

		Help: r.NewStyle().
			Foreground(colorMuted),

		OK: r.NewStyle().
			Foreground(colorSecondary),
	}
}
