// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import tea "github.com/charmbracelet/bubbletea"

// Size remembers the last area a component was given.
type Size struct {
	Width  int
	Height int
}

// Update stores the dimensions of a tea.WindowSizeMsg and reports whether
// msg was one.
func (s *Size) Update(msg tea.Msg) bool {
	resize, ok := msg.(tea.WindowSizeMsg)
	if ok {
		*s = Size{Width: resize.Width, Height: resize.Height}
	}
	return ok
}

// Msg replays the stored area, e.g. to a freshly built child.
func (s Size) Msg() tea.WindowSizeMsg {
	return s.WithHeight(s.Height)
}

// WithHeight returns a resize for a full-width band of the given height.
// Negative heights become zero.
func (s Size) WithHeight(height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: s.Width, Height: max(height, 0)}
}
