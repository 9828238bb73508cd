// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

const shield = "🛡"

// minBodyHeight is the space left for the screen before the header hides.
const minBodyHeight = 10

type Model struct {
	size     util.Size
	subtitle string
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

// SetSubtitle shows s right of the application title.
func (m *Model) SetSubtitle(s string) {
	m.subtitle = s
}

func (m Model) View() string {
	title := style.Title.Render(shield + " " + i18n.T("app.title"))
	if m.subtitle != "" {
		title += " · " + m.subtitle
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			title,
		))
}

// Height returns the rows the header needs when the terminal is total rows
// high, or 0 if the header should hide.
func (m Model) Height(total int) int {
	h := lipgloss.Height(m.View())
	if total >= minBodyHeight+h {
		return h
	}
	return 0
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
