// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package content holds the fixed literals shown on the static screens.
// Numbers are constants; text is referenced by i18n message id.
package content

import (
	"github.com/cyberguardian/cyberguardian/internal/navigator"
	"github.com/cyberguardian/cyberguardian/internal/permissions"
)

// Home dashboard counters.
const (
	AppsScanned    = 18
	ThreatsBlocked = 6
	NewTips        = 5
	SOSAlerts      = 1
)

// Scanner screen figures.
const (
	ScanPercent   = 75
	AppsFound     = 3
	HighRiskCount = 3
)

// Stat is a labelled counter.
type Stat struct {
	LabelID string
	Value   int
}

// Tip is an awareness entry. SubtitleID may be empty.
type Tip struct {
	TitleID    string
	SubtitleID string
}

// Action is a selectable entry that fires a navigation trigger.
type Action struct {
	Trigger navigator.Trigger
	LabelID string
}

// PermissionInfo describes one switch on the permission access screen.
type PermissionInfo struct {
	Permission    permissions.Permission
	LabelID       string
	DescriptionID string
}

// HomeSnapshot returns the activity snapshot rows.
func HomeSnapshot() []Stat {
	return []Stat{
		{LabelID: "home.snapshot.apps_scanned", Value: AppsScanned},
		{LabelID: "home.snapshot.threats_blocked", Value: ThreatsBlocked},
		{LabelID: "home.snapshot.new_tips", Value: NewTips},
		{LabelID: "home.snapshot.sos_alerts", Value: SOSAlerts},
	}
}

var actionLabels = map[navigator.Trigger]string{
	navigator.Continue:      "login.continue",
	navigator.OpenPhishing:  "home.action.phishing",
	navigator.OpenScanner:   "home.action.scanner",
	navigator.OpenAwareness: "home.action.awareness",
	navigator.SOSAlert:      "home.action.sos",
	navigator.StartScan:     "scanner.scan",
}

// Actions returns the labelled triggers a screen offers, in display order.
func Actions(s navigator.Screen) []Action {
	triggers := navigator.Triggers(s)
	out := make([]Action, 0, len(triggers))
	for _, t := range triggers {
		out = append(out, Action{Trigger: t, LabelID: actionLabels[t]})
	}
	return out
}

// ScannerApps returns the apps listed under "Apps with Access".
func ScannerApps() []string {
	return []string{"WhatsApp", "Instagram", "TikTok"}
}

// AwarenessTips returns the awareness list.
func AwarenessTips() []Tip {
	return []Tip{
		{TitleID: "awareness.tip.common_scams", SubtitleID: "awareness.tip.common_scams.sub"},
		{TitleID: "awareness.tip.secure_accounts"},
		{TitleID: "awareness.tip.fake_news"},
		{TitleID: "awareness.tip.messaging"},
	}
}

// Permissions returns the permission switches in display order.
func Permissions() []PermissionInfo {
	return []PermissionInfo{
		{Permission: permissions.Camera, LabelID: "permissions.camera", DescriptionID: "permissions.camera.desc"},
		{Permission: permissions.Storage, LabelID: "permissions.storage", DescriptionID: "permissions.storage.desc"},
		{Permission: permissions.Location, LabelID: "permissions.location", DescriptionID: "permissions.location.desc"},
	}
}
