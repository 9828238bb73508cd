// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package navigator holds the current screen of the application and the
// table of transitions between screens.
package navigator

// Hook runs when a screen is entered or left.
type Hook func(Screen)

// Navigator owns the single current Screen value. It starts at Login and has
// no terminal state. Navigator is not safe for concurrent use.
type Navigator struct {
	current Screen
	onEnter map[Screen][]Hook
	onExit  map[Screen][]Hook
}

// New returns a navigator positioned at the login screen.
func New() *Navigator {
	return &Navigator{
		current: Login,
		onEnter: make(map[Screen][]Hook),
		onExit:  make(map[Screen][]Hook),
	}
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	return n.current
}

// Navigate replaces the current screen with target. It never fails.
// Navigating to the active screen changes nothing and runs no hooks.
func (n *Navigator) Navigate(target Screen) {
	if n.current == target {
		return
	}
	from := n.current
	for _, fn := range n.onExit[from] {
		fn(from)
	}
	n.current = target
	for _, fn := range n.onEnter[target] {
		fn(target)
	}
}

// Fire resolves t against the current screen and navigates when the trigger
// is wired. Triggers the current screen does not offer, and unwired ones such
// as SOSAlert, leave the state untouched and report false.
func (n *Navigator) Fire(t Trigger) (Screen, bool) {
	target, ok := Resolve(n.current, t)
	if !ok {
		return n.current, false
	}
	n.Navigate(target)
	return n.current, true
}

// OnEnter registers fn to run every time s becomes the current screen.
func (n *Navigator) OnEnter(s Screen, fn Hook) {
	n.onEnter[s] = append(n.onEnter[s], fn)
}

// OnExit registers fn to run every time s stops being the current screen.
func (n *Navigator) OnExit(s Screen, fn Hook) {
	n.onExit[s] = append(n.onExit[s], fn)
}
