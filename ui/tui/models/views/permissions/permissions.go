// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package permissions lists the permission switches of the scanned apps.
package permissions

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/content"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
	"github.com/cyberguardian/cyberguardian/util/slicest"
)

type Model struct {
	state   *app.State
	entries []content.PermissionInfo
	cursor  int
	keyMap  KeyMap
	size    util.Size
	focused bool
}

func New(state *app.State) *Model {
	return &Model{
		state:   state,
		entries: content.Permissions(),
		keyMap:  DefaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}

	switch {
	case key.Matches(kmsg, m.keyMap.Up):
		m.cursor = util.Clamp(0, m.cursor-1, len(m.entries)-1)
	case key.Matches(kmsg, m.keyMap.Down):
		m.cursor = util.Clamp(0, m.cursor+1, len(m.entries)-1)
	case key.Matches(kmsg, m.keyMap.Toggle):
		if toggles := m.state.Permissions(); toggles != nil {
			p := m.entries[m.cursor].Permission
			logging.Debugf("permission %s switched to %v", p, toggles.Toggle(p))
		}
	}
	return nil
}

// Cursor returns the index of the highlighted switch.
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) row(i int, e content.PermissionInfo) string {
	granted := false
	if toggles := m.state.Permissions(); toggles != nil {
		granted = toggles.Granted(e.Permission)
	}

	state := style.Danger.Render("[" + i18n.T("permissions.off") + "]")
	if granted {
		state = style.Safe.Render("[" + i18n.T("permissions.on") + " ]")
	}

	pointer := "  "
	label := i18n.T(e.LabelID)
	if i == m.cursor && m.focused {
		pointer = style.Cursor.Render("> ")
		label = style.Cursor.Render(label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s%s %s", pointer, state, label),
		"        "+style.Muted.Render(i18n.T(e.DescriptionID)),
	)
}

func (m *Model) View() string {
	return style.Page(m.size.Width, m.size.Height, lipgloss.JoinVertical(
		lipgloss.Left,
		style.Title.Render(i18n.T("permissions.title")),
		style.Muted.Render(i18n.T("permissions.intro")),
		"",
		lipgloss.JoinVertical(lipgloss.Left, slicest.MapI(m.entries, m.row)...),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
