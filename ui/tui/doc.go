// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the terminal user interface. Screens and their state live
// in internal/app; this package only presents them and turns key presses
// into navigation triggers.
package tui
