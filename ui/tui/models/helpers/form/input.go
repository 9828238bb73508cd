// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

// Input is one row of a Form. Get and Set exchange the value that is
// decoded into the form's result under the row id.
type Input interface {
	util.Focusable
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	View(width int) string
	Get() any
	Set(any)
	Reset()
}

// Action is what an input asks the form to do after handling a message.
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
)
