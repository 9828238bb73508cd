// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package app provides the single application-state container. It owns the
// navigator and the ephemeral state of whichever screen is active; that
// state is created when a screen is entered and dropped when it is left.
package app

import (
	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/internal/permissions"
	"github.com/cyberguardian/cyberguardian/internal/phishing"
)

// State is the application state. It is not safe for concurrent use; the
// TUI only touches it from its update loop.
type State struct {
	nav *navigator.Navigator

	loginName   string
	checker     *phishing.Checker
	permissions *permissions.Toggles
}

// New returns a state positioned at the login screen.
func New() *State {
	s := &State{nav: navigator.New()}

	s.nav.OnEnter(navigator.Login, func(navigator.Screen) { s.loginName = "" })
	s.nav.OnExit(navigator.Login, func(navigator.Screen) { s.loginName = "" })

	s.nav.OnEnter(navigator.Phishing, func(navigator.Screen) { s.checker = phishing.NewChecker() })
	s.nav.OnExit(navigator.Phishing, func(navigator.Screen) { s.checker = nil })

	s.nav.OnEnter(navigator.PermissionAccess, func(navigator.Screen) { s.permissions = permissions.NewToggles() })
	s.nav.OnExit(navigator.PermissionAccess, func(navigator.Screen) { s.permissions = nil })

	for _, screen := range navigator.Screens() {
		s.nav.OnEnter(screen, func(to navigator.Screen) {
			logging.Debugf("entered screen %s", to)
		})
	}

	return s
}

// Current returns the active screen.
func (s *State) Current() navigator.Screen {
	return s.nav.Current()
}

// Navigate moves to target unconditionally.
func (s *State) Navigate(target navigator.Screen) {
	s.nav.Navigate(target)
}

// Fire resolves a trigger raised on the active screen.
func (s *State) Fire(t navigator.Trigger) (navigator.Screen, bool) {
	from := s.nav.Current()
	to, ok := s.nav.Fire(t)
	if !ok {
		logging.Debugf("trigger %s on %s has no target", t, from)
	}
	return to, ok
}

// LoginName returns the text typed into the login name field. The name is
// accepted but not used by any other screen.
func (s *State) LoginName() string {
	return s.loginName
}

// SetLoginName stores the login field text while the login screen is active.
func (s *State) SetLoginName(name string) {
	if s.nav.Current() == navigator.Login {
		s.loginName = name
	}
}

// Phishing returns the link checker, or nil unless the phishing screen is
// active.
func (s *State) Phishing() *phishing.Checker {
	return s.checker
}

// Permissions returns the permission switches, or nil unless the permission
// access screen is active.
func (s *State) Permissions() *permissions.Toggles {
	return s.permissions
}
