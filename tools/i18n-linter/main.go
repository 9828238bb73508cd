// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation files against the Go sources. Message
// ids reach i18n.T either directly or through lookup tables (screen titles,
// dashboard rows), so every dotted string literal that matches a locale key
// counts as a use.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// calls of i18n.T with a literal message id
	directCallRe = regexp.MustCompile(`i18n\.T\(\s*"([^"]+)"`)
	// lowercase dotted literals such as "home.snapshot.apps_scanned"
	idLiteralRe = regexp.MustCompile(`"([a-z][a-z0-9_]*(?:\.[a-z0-9_]+)+)"`)
)

// report is the outcome of one lint run.
type report struct {
	Missing  map[string][]Location // called with i18n.T but absent from the primary locale
	Orphaned []string              // in the primary locale, never referenced
	Gaps     map[string][]string   // other locale file -> keys it lacks
}

func (r report) failed() bool {
	return len(r.Missing) > 0 || len(r.Gaps) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	printReport(r)
	if r.failed() {
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	}
	if len(r.Orphaned) > 0 {
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
		return
	}
	fmt.Println("🎉 All checks passed!")
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]Location{}, Gaps: map[string][]string{}}

	primary, err := loadKeysFromLocale(filepath.Join(root, locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	direct, literals, err := scanSources(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}

	for key, locs := range direct {
		if _, ok := primary[key]; !ok {
			r.Missing[key] = locs
		}
	}
	for key := range primary {
		if _, ok := literals[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(root, locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		var gaps []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				gaps = append(gaps, key)
			}
		}
		if len(gaps) > 0 {
			sort.Strings(gaps)
			r.Gaps[filepath.Base(file)] = gaps
		}
	}

	return r, nil
}

// scanSources returns the ids passed straight to i18n.T and every dotted
// literal found in non-test Go files below root.
func scanSources(root string) (direct map[string][]Location, literals map[string]struct{}, err error) {
	direct = map[string][]Location{}
	literals = map[string]struct{}{}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range directCallRe.FindAllStringSubmatch(line, -1) {
				direct[m[1]] = append(direct[m[1]], Location{Filepath: path, Line: i + 1})
			}
			for _, m := range idLiteralRe.FindAllStringSubmatch(line, -1) {
				literals[m[1]] = struct{}{}
			}
		}
		return nil
	})
	return direct, literals, err
}

func printReport(r report) {
	fmt.Println("--- Missing Keys (used in code, absent from primary locale) ---")
	if len(r.Missing) == 0 {
		fmt.Println("  ✨ None found.")
	}
	missing := make([]string, 0, len(r.Missing))
	for key := range r.Missing {
		missing = append(missing, key)
	}
	sort.Strings(missing)
	for _, key := range missing {
		loc := r.Missing[key][0]
		fmt.Printf("  - Missing: %s (%s:%d)\n", key, loc.Filepath, loc.Line)
	}

	fmt.Println("\n--- Orphaned Keys (in primary locale, never referenced) ---")
	if len(r.Orphaned) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, key := range r.Orphaned {
		fmt.Printf("  - Orphaned: %s\n", key)
	}

	fmt.Println("\n--- Locale Gaps (in primary locale, absent from others) ---")
	if len(r.Gaps) == 0 {
		fmt.Println("  ✨ All keys present.")
	}
	files := make([]string, 0, len(r.Gaps))
	for file := range r.Gaps {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		fmt.Printf("%s:\n", file)
		for _, key := range r.Gaps[file] {
			fmt.Printf("  - Missing: %s\n", key)
		}
	}
	fmt.Println()
}

// loadKeysFromLocale reads a YAML locale file and returns its message ids.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var content map[string]interface{}
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", content, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dotted ids. Flat files with dotted
// keys pass through unchanged.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
