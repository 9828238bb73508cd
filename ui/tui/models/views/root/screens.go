// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/cyberguardian/cyberguardian/internal/app"
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/awareness"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/home"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/login"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/permissions"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/phishing"
	"github.com/cyberguardian/cyberguardian/ui/tui/models/views/scanner"
	"github.com/cyberguardian/cyberguardian/ui/tui/util"
)

// screenTitles are the i18n ids shown in the header and the window title.
var screenTitles = map[navigator.Screen]string{
	navigator.Home:             "home.overview",
	navigator.Scanner:          "scanner.title",
	navigator.PermissionAccess: "permissions.title",
	navigator.Awareness:        "awareness.title",
	navigator.Phishing:         "phishing.title",
}

// BuildScreen creates a fresh view for screen.
func BuildScreen(screen navigator.Screen, state *app.State) util.Model {
	switch screen {
	case navigator.Home:
		return home.New()
	case navigator.Scanner:
		return scanner.New()
	case navigator.PermissionAccess:
		return permissions.New(state)
	case navigator.Awareness:
		return awareness.New()
	case navigator.Phishing:
		return phishing.New(state)
	default:
		return login.New(state)
	}
}
