// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Cyber Guardian using
// Cobra. It loads configuration, sets up logging and translations, and
// starts the terminal UI. The few scriptable commands delegate to the same
// internal packages the screens use.
package cli
