// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package home is the dashboard with the security overview and the quick
// actions leading to the feature screens.
package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/content"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/menu"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/router"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
	"github.com/cyberguardian/cyberguardian/util/slicest"
)

type Model struct {
	controll router.Controll
	menu     *menu.Model
	size     util.Size
}

func New() *Model {
	m := &Model{}
	m.menu = menu.New(slicest.Map(content.Actions(navigator.Home), func(a content.Action) menu.Item {
		return menu.Item{
			Id:   a.Trigger.String(),
			Name: i18n.T(a.LabelID),
			Cmd:  m.fire(a.Trigger),
		}
	})...)
	return m
}

// fire resolves the router controll when the command runs, since the
// controll only arrives with router.InitMsg.
func (m *Model) fire(t navigator.Trigger) tea.Cmd {
	return func() tea.Msg {
		return m.controll.Fire(t)()
	}
}

func (m *Model) Init() tea.Cmd {
	return m.menu.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case router.InitMsg:
		m.controll = msg.RouterControll
		return nil
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		return nil
	}
	return m.menu.Update(msg)
}

func (m *Model) overview() string {
	level := lipgloss.JoinVertical(lipgloss.Left,
		style.Muted.Render(i18n.T("home.protection.label")),
		style.Danger.Render(i18n.T("home.protection.value")),
		style.Muted.Render(i18n.T("home.protection.updated")),
	)
	return style.Card.Render(level)
}

func (m *Model) snapshot() string {
	rows := slicest.Map(content.HomeSnapshot(), func(s content.Stat) string {
		return fmt.Sprintf("%-24s %3d", i18n.T(s.LabelID), s.Value)
	})
	return strings.Join(rows, "\n")
}

func (m *Model) View() string {
	return style.Page(m.size.Width, m.size.Height, lipgloss.JoinVertical(
		lipgloss.Left,
		style.Title.Render(i18n.T("home.overview")),
		m.overview(),
		style.Section.Render(i18n.T("home.snapshot.title")),
		m.snapshot(),
		style.Section.Render(i18n.T("home.actions.title")),
		m.menu.View(),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.menu.Focus()
}

func (m *Model) Blur() {
	m.menu.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
