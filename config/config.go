// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appDir     = "cyberguardian"
	configName = "cyberguardian"
	envPrefix  = "cyberguardian"
)

// RuntimeOS is the operating system used to pick config locations.
// Tests override it.
var RuntimeOS = runtime.GOOS

// Config is the full program configuration.
type Config struct {
	Language string    `mapstructure:"language" yaml:"language"`
	Log      LogConfig `mapstructure:"log" yaml:"log"`
	UI       UIConfig  `mapstructure:"ui" yaml:"ui"`
}

// LogConfig controls the package logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the TUI runs. Empty discards it.
	File string `mapstructure:"file" yaml:"file"`
}

// UIConfig controls the terminal program.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// Defaults returns the default value of every key.
func Defaults() map[string]any {
	return map[string]any{
		"language":      "en",
		"log.level":     "info",
		"log.file":      "",
		"ui.alt_screen": true,
	}
}

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "CyberGuardian")
		default:
			configDir = filepath.Join("/etc", appDir)
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appDir)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig resolves configuration from defaults, the first config file
// found, CYBERGUARDIAN_* environment variables and cmd's flags, in
// increasing order of precedence. explicitPath, when set, replaces the file
// search. A missing file is reported as viper.ConfigFileNotFoundError next to
// a config built from the remaining sources.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if explicitPath != nil && isEmptyFile(*explicitPath) {
		// an empty file carries nothing; treat it like a missing one
		notFound = viper.ConfigFileNotFoundError{}
	} else if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

func isEmptyFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() == 0
}

// WriteConfigFile writes c as YAML to the user or system config path,
// creating the directory when needed.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("could not encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("could not write config file %s: %w", path, err)
	}

	return path, nil
}
