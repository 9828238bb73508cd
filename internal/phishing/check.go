// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package phishing implements the manual link checker shown on the phishing
// screen. The check is a simulation: a link is flagged when its text contains
// the marker word "unsecure" in any letter case.
package phishing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Marker is the word that makes a link unsecure.
const Marker = "unsecure"

// Verdict is the result of a link check.
type Verdict int

const (
	Unknown Verdict = iota
	Secure
	Unsecure
)

func (v Verdict) String() string {
	switch v {
	case Secure:
		return "secure"
	case Unsecure:
		return "unsecure"
	default:
		return "unknown"
	}
}

// Check evaluates url. It accepts any input, including the empty string,
// malformed URLs and control characters, and never returns Unknown.
func Check(url string) Verdict {
	if containsFold(url, Marker) {
		return Unsecure
	}
	return Secure
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	fold := cases.Fold()
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.Contains(fold.String(s), fold.String(substr))
}
