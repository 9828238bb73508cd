// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer shows the key help below every screen. Bindings announced
// by the active screen come first; the global ones are appended.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/keyhelp"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

var rule = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderTop(true).
	BorderForeground(style.Subtle)

type Model struct {
	global help.KeyMap
	width  int
	keys   *keyhelp.Model
}

func New(global help.KeyMap) *Model {
	m := &Model{global: global, keys: keyhelp.New()}
	// until a screen announces itself only the global keys are listed
	m.keys.Update(util.AnnounceKeyMapMsg{KeyMap: global})
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m.keys.Update(msg)
	case util.AnnounceKeyMapMsg:
		return m.keys.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.global),
		})
	}
	return nil
}

func (m *Model) View() string {
	align := lipgloss.Left
	if m.keys.Expanded {
		align = lipgloss.Center
	}
	return rule.Render(lipgloss.PlaceHorizontal(m.width, align, m.keys.View()))
}

// Height is the number of rows View currently occupies.
func (m *Model) Height() int {
	return lipgloss.Height(m.View())
}

// The footer never takes focus.
func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                          {}

func (m *Model) Expanded() bool  { return m.keys.Expanded }
func (m *Model) ToggleExpanded() { m.keys.ToggleExpanded() }

var _ util.Model = (*Model)(nil)
