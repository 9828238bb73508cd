// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"os"
	"runtime/debug"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cyberguardian/cyberguardian/buildvars"
)

func TestResolveBuildVersion_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" || c != "deadbeef" || d != "2026-01-01T00:00:00Z" {
		t.Fatalf("unexpected build version %s %s %s", v, c, d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/other", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v0.3.1"},
		},
	}
	if v, _, _ := resolveBuildVersion(info); v != "v0.3.1" {
		t.Fatalf("expected dependency version fallback, got %s", v)
	}
}

func TestResolveBuildVersion_LinkerValuesWin(t *testing.T) {
	oldV, oldC := buildvars.Version, buildvars.GitCommit
	defer func() { buildvars.Version, buildvars.GitCommit = oldV, oldC }()
	buildvars.Version, buildvars.GitCommit = "1.0.0", "cafe"

	info := &debug.BuildInfo{
		Main:     debug.Module{Path: modulePath, Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
	}
	v, c, _ := resolveBuildVersion(info)
	if v != "1.0.0" || c != "cafe" {
		t.Fatalf("linker values should win, got %s %s", v, c)
	}
}

func TestPrintVersion_OmitsEmptyDate(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, "dev", "dev", "")
	if buf.String() != "version: dev\ncommit: dev\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil || p != nil {
		t.Fatalf("expected nil path without error, got %v %v", p, err)
	}
}

func TestGetConfigPathFromCli_WithValidFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "cgcfg-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	_ = file.Close()

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	if err := cmd.Flags().Set("config", file.Name()); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	p, err := getConfigPathFromCli(cmd)
	if err != nil || p == nil || *p != file.Name() {
		t.Fatalf("expected path %s, got %v (%v)", file.Name(), p, err)
	}
}
