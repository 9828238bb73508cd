// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Focusable components receive keyboard input while focused and report the
// bindings they react to.
type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// AnnounceKeyMapMsg tells the key help which bindings are active.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

// AnnounceKeyMapCmd merges keymaps and announces the result.
func AnnounceKeyMapCmd(keymaps ...help.KeyMap) tea.Cmd {
	k := MergeKeyMaps(keymaps...)
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: k}
	}
}

// MergeKeyMaps joins keymaps in order. nil entries are skipped.
func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	var bindings []key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			bindings = append(bindings, k.ShortHelp()...)
		}
	}
	return bindings
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			groups = append(groups, k.FullHelp()...)
		}
	}
	return groups
}

var _ help.KeyMap = MergedKeyMaps{}
