// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package util holds the contracts and small helpers shared by all TUI
// components.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a mutable bubbletea component. Unlike tea.Model it updates in
// place, so parents can hold components behind the interface.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}
