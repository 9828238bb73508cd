// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return r.active.Update(msg)
}

func (r *Router) activeModelFocus() tea.Cmd {
	cmd, keyMap := r.active.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Sequence(
		r.active.Init(),
		r.activeModelUpdate(InitMsg{RouterControll: Controll{rid: r.id}}),
		r.activeModelUpdate(r.size.Msg()),
		r.activeModelFocus(),
	)
}

// show replaces the active model with a fresh one for the current screen.
func (r *Router) show(from navigator.Screen) tea.Cmd {
	if r.active != nil {
		r.active.Blur()
	}
	to := r.state.Current()
	r.active = r.build(to, r.state)
	return tea.Batch(
		r.activeModelInit(),
		func() tea.Msg { return ScreenChangedMsg{From: from, To: to} },
	)
}
