// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package navigator

// Trigger is a user action that may request a screen transition.
type Trigger int

const (
	// Continue submits the name on the login screen.
	Continue Trigger = iota
	OpenScanner
	OpenAwareness
	OpenPhishing
	// SOSAlert is offered on the home screen but has no target.
	SOSAlert
	// StartScan is the scan control on the scanner screen.
	StartScan
)

var triggerNames = [...]string{
	Continue:      "continue",
	OpenScanner:   "open-scanner",
	OpenAwareness: "open-awareness",
	OpenPhishing:  "open-phishing",
	SOSAlert:      "sos-alert",
	StartScan:     "start-scan",
}

func (t Trigger) String() string {
	if t >= Continue && t <= StartScan {
		return triggerNames[t]
	}
	return "unknown"
}

// edge is one row of the transition table. A nil target marks a trigger
// that is offered but not wired to any screen.
type edge struct {
	trigger Trigger
	target  *Screen
}

func to(s Screen) *Screen { return &s }

// transitions lists the outgoing triggers of every screen in display order.
var transitions = map[Screen][]edge{
	Login: {
		{trigger: Continue, target: to(Home)},
	},
	Home: {
		{trigger: OpenPhishing, target: to(Phishing)},
		{trigger: OpenScanner, target: to(Scanner)},
		{trigger: OpenAwareness, target: to(Awareness)},
		{trigger: SOSAlert},
	},
	Scanner: {
		{trigger: StartScan, target: to(PermissionAccess)},
	},
}

// Triggers returns the triggers a screen offers, in display order.
// Leaf screens return nil.
func Triggers(s Screen) []Trigger {
	edges := transitions[s]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Trigger, len(edges))
	for i, e := range edges {
		out[i] = e.trigger
	}
	return out
}

// Resolve looks up where trigger t leads from screen s. ok is false when s
// does not offer t or when t is offered but unwired.
func Resolve(s Screen, t Trigger) (target Screen, ok bool) {
	for _, e := range transitions[s] {
		if e.trigger != t {
			continue
		}
		if e.target == nil {
			return s, false
		}
		return *e.target, true
	}
	return s, false
}
