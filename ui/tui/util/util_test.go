// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestMergeKeyMaps_SkipsNil(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("expected 3 short bindings, got %d", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("expected 2 groups, got %d", got)
	}
}

func TestAnnounceKeyMapCmd(t *testing.T) {
	var km help.KeyMap = testKeyMap{key.NewBinding(key.WithKeys("x"))}
	msg := AnnounceKeyMapCmd(km)()
	announced, ok := msg.(AnnounceKeyMapMsg)
	if !ok {
		t.Fatalf("expected AnnounceKeyMapMsg, got %T", msg)
	}
	if len(announced.KeyMap.ShortHelp()) != 1 {
		t.Fatalf("announced keymap lost bindings")
	}
}

func TestSizeUpdate(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message must not count as resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) || s.Width != 80 || s.Height != 24 {
		t.Fatalf("resize not stored: %+v", s)
	}
	if s.Msg() != (tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("Msg mismatch: %+v", s.Msg())
	}
	if got := s.WithHeight(-3); got.Width != 80 || got.Height != 0 {
		t.Fatalf("negative band height should clamp to zero, got %+v", got)
	}
}

func TestClampAndWrap(t *testing.T) {
	if Clamp(0, 5, 3) != 3 || Clamp(0, -1, 3) != 0 || Clamp(0, 2, 3) != 2 {
		t.Fatalf("clamp broken")
	}
	if Wrap(0, -1, 4) != 3 || Wrap(3, 1, 4) != 0 || Wrap(1, 1, 4) != 2 || Wrap(0, 1, 0) != 0 {
		t.Fatalf("wrap broken")
	}
}
