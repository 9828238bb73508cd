// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package navigator

import "fmt"

// Screen identifies which full-page view is currently displayed.
type Screen int

const (
	Login Screen = iota
	Home
	Scanner
	PermissionAccess
	Awareness
	Phishing
)

var screenNames = [...]string{
	Login:            "login",
	Home:             "home",
	Scanner:          "scanner",
	PermissionAccess: "permissions",
	Awareness:        "awareness",
	Phishing:         "phishing",
}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	return []Screen{Login, Home, Scanner, PermissionAccess, Awareness, Phishing}
}

// String returns the route name of the screen.
func (s Screen) String() string {
	if s.Valid() {
		return screenNames[s]
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	return s >= Login && s <= Phishing
}

// ParseScreen resolves a route name back to its Screen.
func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), nil
		}
	}
	return Login, fmt.Errorf("unknown screen %q", name)
}
