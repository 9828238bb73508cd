// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package scanner shows the app permission scan summary.
package scanner

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/content"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/router"
	forminput "github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form/input"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
	"github.com/cyberguardian/cyberguardian/util/slicest"
)

const maxBarWidth = 40

type Model struct {
	controll router.Controll
	keyMap   KeyMap
	bar      progress.Model
	button   *forminput.Button
	size     util.Size
	focused  bool
}

func New() *Model {
	return &Model{
		keyMap: DefaultKeyMap(),
		bar: progress.New(
			progress.WithGradient("#A5D6A7", "#2E7D32"),
			progress.WithoutPercentage(),
			progress.WithWidth(maxBarWidth),
		),
		button: forminput.NewButton(i18n.T("scanner.scan"), false),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case router.InitMsg:
		m.controll = msg.RouterControll
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.bar.Width = util.Clamp(10, m.size.Width-4, maxBarWidth)
	case tea.KeyMsg:
		if m.focused && key.Matches(msg, m.keyMap.Scan) {
			return m.controll.Fire(navigator.StartScan)
		}
	}
	return nil
}

func (m *Model) cards() string {
	card := func(label, value string) string {
		return style.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			style.Muted.Render(label),
			value,
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(i18n.T("scanner.risk.label"), style.Danger.Render(i18n.T("scanner.risk.value", content.HighRiskCount))),
		card(i18n.T("scanner.last_scan.label"), i18n.T("scanner.last_scan.value")),
	)
}

func (m *Model) View() string {
	apps := slicest.Map(content.ScannerApps(), func(name string) string {
		return "• " + name
	})
	return style.Page(m.size.Width, m.size.Height, lipgloss.JoinVertical(
		lipgloss.Left,
		style.Title.Render(i18n.T("scanner.title")),
		"",
		m.bar.ViewAs(float64(content.ScanPercent)/100),
		i18n.T("scanner.percent", content.ScanPercent)+"   "+style.Muted.Render(i18n.T("scanner.apps_found", content.AppsFound)),
		m.cards(),
		style.Section.Render(i18n.T("scanner.apps.title")),
		lipgloss.JoinVertical(lipgloss.Left, apps...),
		"",
		m.button.View(m.size.Width),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.button.Focus()
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.button.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
