// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package navigator

import "testing"

func TestNew_StartsAtLogin(t *testing.T) {
	n := New()
	if n.Current() != Login {
		t.Fatalf("expected initial screen login, got %s", n.Current())
	}
}

func TestNavigate_AnyScreenIsAccepted(t *testing.T) {
	for _, s := range Screens() {
		n := New()
		n.Navigate(s)
		if n.Current() != s {
			t.Fatalf("navigate(%s): current is %s", s, n.Current())
		}
		// repeating the same navigation is a no-op
		n.Navigate(s)
		if n.Current() != s {
			t.Fatalf("repeat navigate(%s): current is %s", s, n.Current())
		}
	}
}

func TestFire_EndToEndScenario(t *testing.T) {
	n := New()

	steps := []struct {
		trigger Trigger
		want    Screen
	}{
		{Continue, Home},
		{OpenScanner, Scanner},
		{StartScan, PermissionAccess},
	}
	for _, step := range steps {
		got, ok := n.Fire(step.trigger)
		if !ok || got != step.want {
			t.Fatalf("fire(%s): got (%s, %v), want (%s, true)", step.trigger, got, ok, step.want)
		}
	}
	if n.Current() != PermissionAccess {
		t.Fatalf("expected permissions screen, got %s", n.Current())
	}
}

func TestFire_SOSAlertIsNoop(t *testing.T) {
	n := New()
	n.Navigate(Home)

	got, ok := n.Fire(SOSAlert)
	if ok {
		t.Fatalf("expected sos alert to be unwired")
	}
	if got != Home || n.Current() != Home {
		t.Fatalf("expected to stay on home, got %s", n.Current())
	}
}

func TestFire_TriggerNotOfferedByScreen(t *testing.T) {
	cases := []struct {
		from    Screen
		trigger Trigger
	}{
		{Login, OpenScanner},
		{Home, Continue},
		{Scanner, OpenPhishing},
		{Awareness, Continue},
		{Phishing, StartScan},
		{PermissionAccess, OpenAwareness},
	}
	for _, c := range cases {
		n := New()
		n.Navigate(c.from)
		if _, ok := n.Fire(c.trigger); ok {
			t.Fatalf("fire(%s) from %s should not navigate", c.trigger, c.from)
		}
		if n.Current() != c.from {
			t.Fatalf("fire(%s) from %s moved to %s", c.trigger, c.from, n.Current())
		}
	}
}

func TestTriggers_LeavesHaveNone(t *testing.T) {
	for _, s := range []Screen{Awareness, Phishing, PermissionAccess} {
		if got := Triggers(s); len(got) != 0 {
			t.Fatalf("expected %s to be a leaf, got triggers %v", s, got)
		}
	}
	home := Triggers(Home)
	want := []Trigger{OpenPhishing, OpenScanner, OpenAwareness, SOSAlert}
	if len(home) != len(want) {
		t.Fatalf("home triggers: got %v, want %v", home, want)
	}
	for i := range want {
		if home[i] != want[i] {
			t.Fatalf("home triggers: got %v, want %v", home, want)
		}
	}
}

func TestHooks_RunOncePerChange(t *testing.T) {
	n := New()
	var entered, left []Screen
	n.OnEnter(Phishing, func(s Screen) { entered = append(entered, s) })
	n.OnExit(Phishing, func(s Screen) { left = append(left, s) })

	n.Navigate(Home)
	n.Navigate(Phishing)
	n.Navigate(Phishing)
	n.Navigate(Home)

	if len(entered) != 1 || entered[0] != Phishing {
		t.Fatalf("expected exactly one enter hook run, got %v", entered)
	}
	if len(left) != 1 || left[0] != Phishing {
		t.Fatalf("expected exactly one exit hook run, got %v", left)
	}
}

func TestParseScreen_RoundTrip(t *testing.T) {
	for _, s := range Screens() {
		got, err := ParseScreen(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseScreen(%q) = %s, %v", s.String(), got, err)
		}
	}
	if _, err := ParseScreen("settings"); err == nil {
		t.Fatalf("expected error for unknown screen name")
	}
	if Screen(42).Valid() {
		t.Fatalf("screen 42 should not be valid")
	}
}
