// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}

	Init("xx")
	if GetLang() != "en" {
		t.Fatalf("unknown language should fall back to en, got %q", GetLang())
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("home.action.scanner"); got != "Mobile App Scanner" {
		t.Fatalf("expected 'Mobile App Scanner', got %q", got)
	}
	if got := T("scanner.percent", 75); got != "75% SCANNED" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("login.continue"); got != "Weiter" {
		t.Fatalf("expected German 'Weiter', got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected id fallback, got %q", got)
	}
	if got := T("no.such.message", 1); got != "no.such.message" {
		t.Fatalf("expected id fallback with args, got %q", got)
	}
}

// Every key in the English catalogue must also exist in German.
func TestLocales_SameKeys(t *testing.T) {
	keys := func(name string) map[string]bool {
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		var m map[string]string
		if err := yaml.Unmarshal(data, &m); err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		out := make(map[string]bool, len(m))
		for k := range m {
			out[k] = true
		}
		return out
	}
	en, de := keys("en.yaml"), keys("de.yaml")
	for k := range en {
		if !de[k] {
			t.Fatalf("de.yaml is missing %q", k)
		}
	}
	for k := range de {
		if !en[k] {
			t.Fatalf("en.yaml is missing %q", k)
		}
	}
}
