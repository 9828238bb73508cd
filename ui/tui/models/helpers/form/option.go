// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import tea "github.com/charmbracelet/bubbletea"

// Option configures a Form during New.
type Option[T any] func(f *Form[T])

// New builds a form; rows appear in the order their Field options are given.
func New[T any](opts ...Option[T]) *Form[T] {
	f := &Form[T]{keyMap: DefaultKeyMap()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Field appends input as a row whose value is decoded under id.
func Field[T any](id string, input Input) Option[T] {
	return func(f *Form[T]) {
		f.items = append(f.items, formItem{id: id, input: input})
	}
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) Option[T] {
	return func(f *Form[T]) { f.OnSubmit = fn }
}

// WithOnChange runs fn after any keystroke that alters a row value.
func WithOnChange[T any](fn func(result T, err error) tea.Cmd) Option[T] {
	return func(f *Form[T]) { f.OnChange = fn }
}

func WithOnCancel[T any](fn func() tea.Cmd) Option[T] {
	return func(f *Form[T]) { f.OnCancel = fn }
}

func WithResetAfterSubmit[T any]() Option[T] {
	return func(f *Form[T]) { f.ResetAfterSubmit = true }
}
