// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence for Cyber
// Guardian. It uses Viper for file/env/flag parsing and writes YAML files
// with goccy/go-yaml. Configuration only tunes the program (language,
// logging, terminal behaviour); it never stores application state.
package config
