// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package awareness lists the cyber awareness tips.
package awareness

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/content"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
	"github.com/cyberguardian/cyberguardian/util/slicest"
)

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m *Model) View() string {
	tips := slicest.Map(content.AwarenessTips(), func(t content.Tip) string {
		body := lipgloss.NewStyle().Bold(true).Render(i18n.T(t.TitleID))
		if t.SubtitleID != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, style.Muted.Render(i18n.T(t.SubtitleID)))
		}
		return style.Card.Render(body)
	})

	return style.Page(m.size.Width, m.size.Height, lipgloss.JoinVertical(
		lipgloss.Left,
		style.Title.Render(i18n.T("awareness.title")),
		"",
		lipgloss.NewStyle().Bold(true).Render(i18n.T("awareness.headline")),
		style.Muted.Render(i18n.T("awareness.intro")),
		lipgloss.JoinVertical(lipgloss.Left, tips...),
		"",
		style.Safe.Render(i18n.T("awareness.footer")),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
