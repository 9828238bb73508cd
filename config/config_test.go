// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/cyberguardian/cyberguardian/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Language != "en" || got.Log.Level != "info" || !got.UI.AltScreen {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	empty := writeFile(t, tmp, "cyberguardian.yaml", "")

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &empty)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	file := writeFile(t, tmp, "cfg.yaml", "language: de\nlog:\n  level: debug\n  file: /tmp/cg.log\nui:\n  alt_screen: false\n")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.Log.Level != "debug" || got.Log.File != "/tmp/cg.log" || got.UI.AltScreen {
		t.Fatalf("unexpected config: %+v", got)
	}
}

func TestLoadConfig_BrokenConfig_ReturnsParseError(t *testing.T) {
	tmp := t.TempDir()
	file := writeFile(t, tmp, "broken.yaml", "language: en\n"+string([]byte{0x01})+"\n")

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err == nil {
		t.Fatalf("expected parse error for broken yaml, got nil")
	}
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("parse error must not look like a missing file: %v", err)
	}
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CYBERGUARDIAN_LANGUAGE", "de")
	t.Setenv("CYBERGUARDIAN_LOG_LEVEL", "warn")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if got.Language != "de" || got.Log.Level != "warn" {
		t.Fatalf("env not applied: %+v", got)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	got, _ = cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "en" {
		t.Fatalf("flag should override env, got %q", got.Language)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	c := cfg.Config{Language: "de"}
	c.Log.Level = "error"
	c.UI.AltScreen = true

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	if !strings.HasPrefix(path, tmp) {
		t.Fatalf("expected config under %s, got %s", tmp, path)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Language != "de" || got.Log.Level != "error" || !got.UI.AltScreen {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestGetConfigPath(t *testing.T) {
	if cfg.RuntimeOS == "windows" {
		t.Skip("unix paths only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	user, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath(false): %v", err)
	}
	if user != "/tmp/xdg/cyberguardian/cyberguardian.yaml" {
		t.Fatalf("unexpected user path %q", user)
	}

	system, err := cfg.GetConfigPath(true)
	if err != nil {
		t.Fatalf("GetConfigPath(true): %v", err)
	}
	if system != "/etc/cyberguardian/cyberguardian.yaml" {
		t.Fatalf("unexpected system path %q", system)
	}
}
