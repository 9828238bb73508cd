// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/style"
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusedLabelStyle = style.Cursor
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	// EnterAction is reported when enter is pressed inside the field.
	EnterAction form.Action

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Enter key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Enter} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Enter}} }

type TextOpt = func(t *Text)

// WithSubmitOnEnter makes enter submit the form instead of moving on.
func WithSubmitOnEnter(help string) TextOpt {
	return func(t *Text) {
		t.EnterAction = form.ActionSubmit
		t.KeyMap.Enter.SetHelp("enter", help)
	}
}

func NewText(label, placeholder string, opts ...TextOpt) *Text {
	t := &Text{
		Label:       label,
		Placeholder: placeholder,
		EnterAction: form.ActionNext,
		KeyMap: TextKeyMap{
			Enter: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("key.next")),
			),
		},
		input: textinput.New(),
	}
	t.input.Placeholder = placeholder
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Enter) {
		return nil, t.EnterAction
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	label := labelStyle.Render(t.Label)
	if t.focused {
		label = focusedLabelStyle.Render(t.Label)
	}

	if width > 4 {
		t.input.Width = width - 4
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

var _ form.Input = (*Text)(nil)
