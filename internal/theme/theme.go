package theme

import (
	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/charmbracelet/lipgloss"
)

// WarningGlyph prefixes options rendered with warning emphasis.
const WarningGlyph = "⚠"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Selected     *lipgloss.Style
	Prompt       *lipgloss.Style
	Header       *lipgloss.Style
	Footer       *lipgloss.Style
	Query        *lipgloss.Style
	Box          *lipgloss.Style
	MessageTitle *lipgloss.Style
	MessageBody  *lipgloss.Style
	Continue     *lipgloss.Style

	emphasis map[menu.Emphasis]*lipgloss.Style
}

var defaultStyles = Styles{
	Selected: ptr(
		lipgloss.NewStyle().Reverse(true).Bold(true),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Box: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	),
	MessageTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	MessageBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Continue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Blink(true),
	),
	emphasis: map[menu.Emphasis]*lipgloss.Style{
		menu.EmphasisNormal:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
		menu.EmphasisWarning: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)),
		menu.EmphasisConfirm: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
		menu.EmphasisRed:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
		menu.EmphasisBlue:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)),
		menu.EmphasisAccent:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("135"))),
		menu.EmphasisMuted:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// For returns the style used to render an option with the given emphasis.
// Unknown emphases render like normal options.
func (s *Styles) For(e menu.Emphasis) lipgloss.Style {
	if style, ok := s.emphasis[e]; ok && style != nil {
		return *style
	}
	if style, ok := s.emphasis[menu.EmphasisNormal]; ok && style != nil {
		return *style
	}
	return lipgloss.NewStyle()
}

// Prefix is the marker rendered before a label with the given emphasis.
func Prefix(e menu.Emphasis) string {
	if e == menu.EmphasisWarning {
		return WarningGlyph + " "
	}
	return "  "
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
