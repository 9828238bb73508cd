// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the footer listing the currently active bindings.
package keyhelp

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	size     util.Size
	help     help.Model
	Expanded bool
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if !m.Expanded {
		return m.help.ShortHelpView(dedupe(m.KeyMap.ShortHelp()))
	}
	groups := make([][]key.Binding, 0, len(m.KeyMap.FullHelp()))
	for _, g := range m.KeyMap.FullHelp() {
		if g = dedupe(g); len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return m.help.FullHelpView(groups)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

// dedupe drops disabled bindings and bindings whose help key was already
// shown. Screens may redeclare a global key with a more specific label.
func dedupe(bindings []key.Binding) []key.Binding {
	var out []key.Binding
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		if slices.ContainsFunc(out, func(seen key.Binding) bool { return seen.Help().Key == b.Help().Key }) {
			continue
		}
		out = append(out, b)
	}
	return out
}
