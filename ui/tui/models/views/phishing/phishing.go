// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package phishing is the link check screen. The text field and the scan
// button both run the check; any edit discards the previous verdict.
package phishing

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/logging"
	phish "github.com/cyberguardian/cyberguardian/internal/phishing"
	forminput "github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form/input"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

const (
	focusInput = iota
	focusButton
	focusCount
)

type pastedMsg struct {
	text string
	err  error
}

// readClipboard is swapped in tests.
var readClipboard = clipboard.ReadAll

func pasteCmd() tea.Msg {
	text, err := readClipboard()
	return pastedMsg{text: text, err: err}
}

type Model struct {
	state   *app.State
	input   textinput.Model
	button  *forminput.Button
	keyMap  KeyMap
	active  int
	size    util.Size
	focused bool
}

func New(state *app.State) *Model {
	input := textinput.New()
	input.Placeholder = i18n.T("phishing.placeholder")
	input.Prompt = "🔗 "
	// the view owns ctrl+v
	input.KeyMap.Paste.SetEnabled(false)

	return &Model{
		state:  state,
		input:  input,
		button: forminput.NewButton(i18n.T("phishing.scan"), false),
		keyMap: DefaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.input.Width = max(m.size.Width-8, 10)
		return nil
	case pastedMsg:
		if msg.err != nil {
			logging.Warnf("clipboard paste failed: %v", msg.err)
			return nil
		}
		m.setURL(m.input.Value() + msg.text)
		return nil
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)
	}

	if m.focused && m.active == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Next):
		return m.setActive(m.active + 1)
	case key.Matches(msg, m.keyMap.Prev):
		return m.setActive(m.active - 1)
	case key.Matches(msg, m.keyMap.Paste):
		return pasteCmd
	case key.Matches(msg, m.keyMap.Scan):
		m.scan()
		return nil
	}

	if m.active != focusInput {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.edit(m.input.Value())
	}
	return cmd
}

func (m *Model) setURL(url string) {
	m.input.SetValue(url)
	m.input.CursorEnd()
	m.edit(url)
}

func (m *Model) edit(url string) {
	if c := m.state.Phishing(); c != nil {
		c.Edit(url)
	}
}

func (m *Model) scan() {
	if c := m.state.Phishing(); c != nil {
		res := c.Scan()
		logging.Debugf("link checked: verdict=%s", res.Verdict)
	}
}

func (m *Model) setActive(i int) tea.Cmd {
	m.active = util.Wrap(i, 0, focusCount)
	if m.active == focusInput {
		m.button.Blur()
		return m.input.Focus()
	}
	m.input.Blur()
	m.button.Focus()
	return nil
}

// Verdict returns the verdict currently displayed.
func (m *Model) Verdict() phish.Verdict {
	if c := m.state.Phishing(); c != nil {
		return c.Verdict()
	}
	return phish.Unknown
}

func (m *Model) verdictView() string {
	switch m.Verdict() {
	case phish.Secure:
		return style.Safe.Render("✔ " + i18n.T("phishing.verdict.secure"))
	case phish.Unsecure:
		return style.Danger.Render("✘ " + i18n.T("phishing.verdict.unsecure"))
	default:
		return style.Muted.Render(i18n.T("phishing.verdict.unknown"))
	}
}

func (m *Model) View() string {
	return style.Page(m.size.Width, m.size.Height, lipgloss.JoinVertical(
		lipgloss.Left,
		style.Title.Render(i18n.T("phishing.title")),
		style.Muted.Render(i18n.T("phishing.prompt")),
		"",
		i18n.T("phishing.url"),
		m.input.View(),
		"",
		m.button.View(m.size.Width),
		"",
		m.verdictView(),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.setActive(m.active), m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
	m.button.Blur()
}

// Typing reports whether key presses currently go into the link field.
func (m *Model) Typing() bool {
	return m.focused && m.active == focusInput
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
