// Package style holds the lipgloss styles shared by the screen views.
package style

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#2E7D32")
	Warn   = lipgloss.Color("#C62828")
	Subtle = lipgloss.Color("245")

	Title   = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Section = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	Muted   = lipgloss.NewStyle().Foreground(Subtle)
	Danger  = lipgloss.NewStyle().Bold(true).Foreground(Warn)
	Safe    = lipgloss.NewStyle().Bold(true).Foreground(Accent)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	Cursor = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// Page pads a view to width and clips it to height when those are known.
func Page(width, height int, content string) string {
	s := lipgloss.NewStyle().Padding(0, 1)
	if width > 0 {
		s = s.MaxWidth(width)
	}
	if height > 0 {
		s = s.MaxHeight(height)
	}
	return s.Render(content)
}
