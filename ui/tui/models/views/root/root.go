// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top level bubbletea model. It stacks the header, the
// screen router and the key help footer, and handles the global keys.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/buildvars"
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/header"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/components/router"
	windowtitle "github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/title"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/footer"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

type Model struct {
	state        *app.State
	header       *header.Model
	router       *router.Router
	controll     router.Controll
	footer       *footer.Model
	titleHandler *windowtitle.Handler
	keyMap       KeyMap
	size         util.Size
	headerHeight int
	bodyHeight   int
}

// New returns the root model for state using build to create screens.
// A nil build uses BuildScreen.
func New(state *app.State, build router.Builder) *Model {
	if build == nil {
		build = BuildScreen
	}
	keyMap := BaseKeyMap()
	r, controll := router.New(state, build)

	return &Model{
		state:        state,
		header:       header.New(),
		router:       r,
		controll:     controll,
		footer:       footer.New(keyMap),
		titleHandler: windowtitle.New(fmt.Sprintf("%s %s", i18n.T("app.title"), buildvars.VersionOrDefault("dev")), " | "),
		keyMap:       keyMap,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Sequence(m.titleHandler.Init(), m.router.Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		return m, m.layout()
	case util.AnnounceKeyMapMsg:
		cmd := m.footer.Update(msg)
		return m, tea.Batch(cmd, m.layout())
	case router.ScreenChangedMsg:
		logging.Infof("screen %s -> %s", msg.From, msg.To)
		subtitle := ""
		if id, ok := screenTitles[msg.To]; ok {
			subtitle = i18n.T(id)
		}
		m.header.SetSubtitle(subtitle)
		return m, windowtitle.Show(subtitle)
	}

	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	return m, m.router.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Exit):
		return tea.Quit
	case key.Matches(msg, m.keyMap.Back):
		return m.router.Update(m.controll.Back()())
	case m.router.Typing():
		// single rune bindings belong to the text field
	case key.Matches(msg, m.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.footer.ToggleExpanded()
		return m.layout()
	}
	return m.router.Update(msg)
}

// layout splits the terminal between header, body and footer and resizes
// each part.
func (m *Model) layout() tea.Cmd {
	m.footer.Update(m.size.WithHeight(0))
	footerHeight := m.footer.Height()

	m.headerHeight = m.header.Height(m.size.Height - footerHeight)
	m.header.Update(m.size.WithHeight(m.headerHeight))

	m.bodyHeight = max(m.size.Height-m.headerHeight-footerHeight, 0)
	return m.router.Update(m.size.WithHeight(m.bodyHeight))
}

func (m *Model) View() string {
	body := lipgloss.NewStyle().
		Height(m.bodyHeight).
		MaxHeight(m.bodyHeight).
		Render(m.router.View())

	parts := make([]string, 0, 3)
	if m.headerHeight > 0 {
		parts = append(parts, m.header.View())
	}
	parts = append(parts, body, m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Screen returns the screen currently shown.
func (m *Model) Screen() navigator.Screen {
	return m.state.Current()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
