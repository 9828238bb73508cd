// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package phishing

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	phish "github.com/cyberguardian/cyberguardian/internal/phishing"
)

func newOnPhishing(t *testing.T) (*Model, *app.State) {
	t.Helper()
	state := app.New()
	state.Navigate(navigator.Phishing)
	m := New(state)
	m.Focus()
	return m, state
}

func stubClipboard(t *testing.T, text string, err error) {
	t.Helper()
	prev := readClipboard
	readClipboard = func() (string, error) { return text, err }
	t.Cleanup(func() { readClipboard = prev })
}

func TestPasteIsAnEdit(t *testing.T) {
	stubClipboard(t, "https://unsecure.example", nil)
	m, state := newOnPhishing(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Verdict() != phish.Secure {
		t.Fatalf("empty link should scan secure, got %s", m.Verdict())
	}

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Fatalf("ctrl+v should request the clipboard")
	}
	m.Update(cmd())
	if state.Phishing().URL() != "https://unsecure.example" {
		t.Fatalf("pasted text not applied, url is %q", state.Phishing().URL())
	}
	if m.Verdict() != phish.Unknown {
		t.Fatalf("paste must reset the verdict, got %s", m.Verdict())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Verdict() != phish.Unsecure {
		t.Fatalf("expected unsecure after scan, got %s", m.Verdict())
	}
}

func TestPasteFailureKeepsState(t *testing.T) {
	stubClipboard(t, "", errors.New("no clipboard"))
	m, state := newOnPhishing(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a.com")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(pasteCmd())
	if state.Phishing().URL() != "a.com" || m.Verdict() != phish.Secure {
		t.Fatalf("failed paste must not touch the link, got %q %s", state.Phishing().URL(), m.Verdict())
	}
}

func TestTypingOnlyInField(t *testing.T) {
	m, _ := newOnPhishing(t)
	if !m.Typing() {
		t.Fatalf("field is focused initially")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Typing() {
		t.Fatalf("button focus is not typing")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.input.Value() != "" {
		t.Fatalf("runes must not reach the field while the button is focused")
	}
	m.Blur()
	if m.Typing() {
		t.Fatalf("blurred view is not typing")
	}
}
