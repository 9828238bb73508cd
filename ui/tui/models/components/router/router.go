// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package router shows one screen model at a time and swaps it whenever the
// application state moves to another screen.
package router

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

var routerId = 1

// Builder creates the model for a screen. It is called on every entry, so
// screens never carry state over from an earlier visit.
type Builder func(screen navigator.Screen, state *app.State) util.Model

type Router struct {
	id      int
	size    util.Size
	state   *app.State
	build   Builder
	active  util.Model
	history []navigator.Screen
}

// New returns a router showing the current screen of state.
func New(state *app.State, build Builder) (*Router, Controll) {
	routerId++
	r := &Router{
		id:    routerId - 1,
		state: state,
		build: build,
	}
	r.active = build(state.Current(), state)
	return r, Controll{rid: r.id}
}

func (r *Router) Init() tea.Cmd {
	return r.activeModelInit()
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if r.size.Update(msg) {
		cmd = r.activeModelUpdate(msg)
	} else if r.isMsgOwner(msg) {
		switch msg := msg.(type) {
		case FireMsg:
			cmd = r.handleFire(msg)
		case NavigateMsg:
			cmd = r.handleNavigate(msg)
		case BackMsg:
			cmd = r.handleBack()
		}
	} else if _, ok := msg.(InitMsg); !ok {
		cmd = r.activeModelUpdate(msg)
	}

	return cmd
}

func (r *Router) View() string {
	return r.active.View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	return r.active.Focus()
}

func (r *Router) Blur() {
	r.active.Blur()
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

// Screen returns the screen currently shown.
func (r *Router) Screen() navigator.Screen {
	return r.state.Current()
}

// CanGoBack reports whether there is a screen to return to.
func (r *Router) CanGoBack() bool {
	return len(r.history) > 0
}

func (r *Router) handleFire(msg FireMsg) tea.Cmd {
	from := r.state.Current()
	if _, ok := r.state.Fire(msg.Trigger); !ok {
		return nil
	}
	r.remember(from)
	return r.show(from)
}

func (r *Router) handleNavigate(msg NavigateMsg) tea.Cmd {
	from := r.state.Current()
	if !msg.Screen.Valid() || msg.Screen == from {
		return nil
	}
	r.state.Navigate(msg.Screen)
	r.remember(from)
	return r.show(from)
}

func (r *Router) handleBack() tea.Cmd {
	if len(r.history) == 0 {
		return nil
	}
	from := r.state.Current()
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.state.Navigate(prev)
	return r.show(from)
}

// remember records from as a back target. The login screen is a one-way
// gate and is never returned to.
func (r *Router) remember(from navigator.Screen) {
	if from != navigator.Login {
		r.history = append(r.history, from)
	}
}

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerID() == r.id
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(RouterMsg)
	return ok
}

// Typing reports whether the active screen has a text field focused.
func (r *Router) Typing() bool {
	t, ok := r.active.(interface{ Typing() bool })
	return ok && t.Typing()
}
