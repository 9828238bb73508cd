// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package login is the entry screen asking for the user's name.
package login

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/router"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form"
	forminput "github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form/input"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

type data struct {
	Name string `mapstructure:"name"`
}

type Model struct {
	state    *app.State
	controll router.Controll
	form     *form.Form[data]
	size     util.Size
}

func New(state *app.State) *Model {
	m := &Model{state: state}
	m.form = form.New(
		form.Field[data]("name", forminput.NewText(
			i18n.T("login.name"),
			i18n.T("login.placeholder"),
			forminput.WithSubmitOnEnter(i18n.T("login.continue")),
		)),
		form.Field[data]("continue", forminput.NewButton(i18n.T("login.continue"), false)),
		form.WithOnChange(func(d data, _ error) tea.Cmd {
			m.state.SetLoginName(d.Name)
			return nil
		}),
		form.WithOnSubmit(func(d data, _ error) tea.Cmd {
			m.state.SetLoginName(d.Name)
			return m.controll.Fire(navigator.Continue)
		}),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case router.InitMsg:
		m.controll = msg.RouterControll
		return nil
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		return m.form.Update(tea.WindowSizeMsg{Width: min(m.size.Width-2, 48), Height: m.size.Height})
	}
	return m.form.Update(msg)
}

func (m *Model) View() string {
	return style.Page(m.size.Width, m.size.Height, lipgloss.JoinVertical(
		lipgloss.Left,
		style.Muted.Render(i18n.T("login.welcome")),
		style.Title.Render(i18n.T("app.title")),
		"",
		i18n.T("login.prompt"),
		"",
		m.form.View(),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// Typing reports whether key presses currently go into the name field.
func (m *Model) Typing() bool {
	return m.form.ActiveID() == "name"
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
