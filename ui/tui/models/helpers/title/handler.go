// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal window title in sync with the
// active screen.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type screenMsg string

// Show asks the Handler to name screen in the window title. An empty screen
// leaves only the application name.
func Show(screen string) tea.Cmd {
	return func() tea.Msg { return screenMsg(screen) }
}

// Handler renders "<app><sep><screen>" as the terminal title.
type Handler struct {
	app    string
	sep    string
	screen string
}

func New(app, sep string) *Handler {
	return &Handler{app: app, sep: sep}
}

// Title returns the full title as it is shown.
func (h Handler) Title() string {
	if h.screen == "" {
		return h.app
	}
	return h.app + h.sep + h.screen
}

func (h Handler) Init() tea.Cmd {
	return tea.SetWindowTitle(h.Title())
}

// Handle consumes messages produced by Show. Anything else, or a repeat of
// the current screen, yields nil.
func (h *Handler) Handle(msg tea.Msg) tea.Cmd {
	screen, ok := msg.(screenMsg)
	if !ok || string(screen) == h.screen {
		return nil
	}
	h.screen = string(screen)
	return tea.SetWindowTitle(h.Title())
}
