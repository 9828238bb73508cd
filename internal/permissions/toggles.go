// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package permissions models the switch list of the permission access screen.
// Switches are display state only; nothing is enforced or persisted.
package permissions

// Permission names one switch on the permission access screen.
type Permission int

const (
	Camera Permission = iota
	Storage
	Location
)

func (p Permission) String() string {
	switch p {
	case Camera:
		return "camera"
	case Storage:
		return "storage"
	case Location:
		return "location"
	default:
		return "unknown"
	}
}

// All returns the permissions in display order.
func All() []Permission {
	return []Permission{Camera, Storage, Location}
}

func (p Permission) valid() bool {
	return p >= Camera && p <= Location
}

// Toggles holds one independent boolean per permission.
type Toggles struct {
	granted [Location + 1]bool
}

// NewToggles returns a switch set with every permission granted.
func NewToggles() *Toggles {
	t := &Toggles{}
	for _, p := range All() {
		t.granted[p] = true
	}
	return t
}

// Granted reports the switch state of p. Unknown permissions report false.
func (t *Toggles) Granted(p Permission) bool {
	if !p.valid() {
		return false
	}
	return t.granted[p]
}

// Toggle flips p and returns its new state. The other switches are untouched.
func (t *Toggles) Toggle(p Permission) bool {
	if !p.valid() {
		return false
	}
	t.granted[p] = !t.granted[p]
	return t.granted[p]
}

// Set stores v for p.
func (t *Toggles) Set(p Permission, v bool) {
	if p.valid() {
		t.granted[p] = v
	}
}

// Snapshot copies the current switch states.
func (t *Toggles) Snapshot() map[Permission]bool {
	out := make(map[Permission]bool, len(t.granted))
	for _, p := range All() {
		out[p] = t.granted[p]
	}
	return out
}
