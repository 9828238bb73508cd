// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu is a vertical list of selectable entries.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
	"github.com/cyberguardian/cyberguardian/util/slicest"
)

var (
	itemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(style.Accent).
			PaddingLeft(1).
			PaddingRight(1).
			MarginLeft(1)
)

// Item is a menu entry. Selecting it runs Cmd, or emits ItemSelected when
// Cmd is nil.
type Item struct {
	Id   string
	Name string
	Cmd  tea.Cmd
}

type ItemSelected struct {
	Id string
}

type Model struct {
	Items   []Item
	Active  int
	keyMap  KeyMap
	size    util.Size
	focused bool
}

func New(items ...Item) *Model {
	return &Model{
		Items:  items,
		keyMap: DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	if !m.focused || len(m.Items) == 0 {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Up):
			m.Active = util.Clamp(0, m.Active-1, len(m.Items)-1)
		case key.Matches(msg, m.keyMap.Down):
			m.Active = util.Clamp(0, m.Active+1, len(m.Items)-1)
		case key.Matches(msg, m.keyMap.Select):
			return m.selected()
		}
	}
	return nil
}

func (m *Model) selected() tea.Cmd {
	item := m.Items[m.Active]
	if item.Cmd != nil {
		return item.Cmd
	}
	return func() tea.Msg { return ItemSelected{Id: item.Id} }
}

func (m Model) View() string {
	lines := slicest.MapI(m.Items, func(i int, item Item) string {
		if i == m.Active && m.focused {
			return activeStyle.Render(item.Name)
		}
		return itemStyle.Render(item.Name)
	})
	view := strings.Join(lines, "\n")

	if m.size.Height > 0 && len(lines) > m.size.Height {
		// keep the active entry visible
		first := util.Clamp(0, m.Active-m.size.Height+1, len(lines)-m.size.Height)
		view = strings.Join(lines[first:first+m.size.Height], "\n")
	}
	if m.size.Width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.size.Width).Render(view)
	}
	return view
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
