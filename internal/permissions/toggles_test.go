// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package permissions

import "testing"

func TestNewToggles_AllGranted(t *testing.T) {
	tg := NewToggles()
	for _, p := range All() {
		if !tg.Granted(p) {
			t.Fatalf("expected %s granted by default", p)
		}
	}
}

func TestToggle_Independent(t *testing.T) {
	tg := NewToggles()

	if got := tg.Toggle(Camera); got {
		t.Fatalf("toggle camera should return false")
	}
	want := map[Permission]bool{Camera: false, Storage: true, Location: true}
	for p, v := range tg.Snapshot() {
		if want[p] != v {
			t.Fatalf("after toggling camera: %s = %v, want %v", p, v, want[p])
		}
	}

	tg.Toggle(Location)
	tg.Toggle(Camera)
	want = map[Permission]bool{Camera: true, Storage: true, Location: false}
	for p, v := range tg.Snapshot() {
		if want[p] != v {
			t.Fatalf("after second round: %s = %v, want %v", p, v, want[p])
		}
	}
}

func TestUnknownPermissionIgnored(t *testing.T) {
	tg := NewToggles()
	bogus := Permission(9)
	tg.Set(bogus, false)
	if tg.Toggle(bogus) || tg.Granted(bogus) {
		t.Fatalf("unknown permission must be ignored")
	}
	if len(tg.Snapshot()) != 3 {
		t.Fatalf("snapshot should only carry known permissions")
	}
	if bogus.String() != "unknown" {
		t.Fatalf("unexpected name %q", bogus.String())
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	tg := NewToggles()
	snap := tg.Snapshot()
	snap[Storage] = false
	if !tg.Granted(Storage) {
		t.Fatalf("mutating snapshot must not change toggles")
	}
}
