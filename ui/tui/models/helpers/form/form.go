// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form stacks inputs vertically and decodes their values into a
// struct with mapstructure.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
	"github.com/cyberguardian/cyberguardian/util/slicest"
)

type formItem struct {
	id    string
	input Input
}

// Form is a vertical list of inputs whose values decode into a T.
type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnChange         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	activeIndex int
	focused     bool
	keyMap      KeyMap
	size        util.Size
}

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) || !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f.changeActiveIndex(-1)
		}
	}

	return f.updateActiveInput(msg)
}

func (f *Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.items, func(item formItem) string {
			return item.input.View(f.size.Width)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.keyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, f.keyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

// Reset clears every input and focuses the first one.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd, submitCmd tea.Cmd
	data, err := f.Get()
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	return tea.Batch(resetCmd, submitCmd)
}

// ActiveID returns the id of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var (
		changeCmd tea.Cmd
		actionCmd tea.Cmd
	)

	input := f.items[f.activeIndex].input
	before := input.Get()
	updateCmd, action := input.Update(msg)

	if f.OnChange != nil && input.Get() != before {
		changeCmd = f.OnChange(f.Get())
	}

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, changeCmd, actionCmd)
}

// changeActiveIndex moves focus by delta, wrapping at both ends, and
// announces the keymap of the newly focused input.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	next := util.Wrap(f.activeIndex, delta, len(f.items))
	if next != f.activeIndex {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = next
	}
	if !f.focused {
		return nil
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap, f.keyMap))
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
