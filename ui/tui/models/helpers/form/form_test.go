// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form"
	forminput "github.com/cyberguardian/cyberguardian/ui/tui/models/helpers/form/input"
)

type loginData struct {
	Name string `mapstructure:"name"`
}

func typeText(f *form.Form[loginData], s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestForm_SubmitDecodesValues(t *testing.T) {
	var got loginData
	submitted := 0
	f := form.New(
		form.Field[loginData]("name", forminput.NewText("Name", "", forminput.WithSubmitOnEnter("continue"))),
		form.Field[loginData]("continue", forminput.NewButton("Continue", false)),
		form.WithOnSubmit(func(d loginData, err error) tea.Cmd {
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			got = d
			submitted++
			return nil
		}),
	)
	f.Focus()

	typeText(f, "alice")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted != 1 || got.Name != "alice" {
		t.Fatalf("enter in field should submit, got %d submits with %+v", submitted, got)
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.ActiveID() != "continue" {
		t.Fatalf("tab should focus the button, active is %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted != 2 || got.Name != "alice" {
		t.Fatalf("button should submit, got %d submits", submitted)
	}
}

func TestForm_OnChangeFollowsEdits(t *testing.T) {
	var last string
	changes := 0
	f := form.New(
		form.Field[loginData]("name", forminput.NewText("Name", "")),
		form.WithOnChange(func(d loginData, _ error) tea.Cmd {
			last = d.Name
			changes++
			return nil
		}),
	)
	f.Focus()

	typeText(f, "bo")
	if changes != 2 || last != "bo" {
		t.Fatalf("expected 2 changes ending in bo, got %d %q", changes, last)
	}
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if changes != 2 {
		t.Fatalf("cursor movement must not count as change")
	}
}

func TestForm_IgnoresInputWhileBlurred(t *testing.T) {
	f := form.New(form.Field[loginData]("name", forminput.NewText("Name", "")))
	typeText(f, "x")
	if d, _ := f.Get(); d.Name != "" {
		t.Fatalf("blurred form accepted input: %q", d.Name)
	}
}

func TestForm_SetAndReset(t *testing.T) {
	f := form.New(
		form.Field[loginData]("name", forminput.NewText("Name", "")),
		form.Field[loginData]("ok", forminput.NewButton("OK", false)),
	)
	if err := f.Set(loginData{Name: "carol"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if d, _ := f.Get(); d.Name != "carol" {
		t.Fatalf("expected carol, got %q", d.Name)
	}
	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Reset()
	if d, _ := f.Get(); d.Name != "" || f.ActiveID() != "name" {
		t.Fatalf("reset should clear values and refocus first input")
	}
}
