// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
)

// Controll is handed to every screen model through InitMsg. Its commands
// address only the router that created it.
type Controll struct {
	rid int
}

// Fire raises a navigation trigger on the active screen.
func (c Controll) Fire(t navigator.Trigger) tea.Cmd {
	return func() tea.Msg { return FireMsg{rid: c.rid, Trigger: t} }
}

// Navigate jumps to a screen without consulting the transition table.
func (c Controll) Navigate(s navigator.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{rid: c.rid, Screen: s} }
}

// Back returns to the previously shown screen.
func (c Controll) Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{rid: c.rid} }
}
