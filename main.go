// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Cyber Guardian, so that `go run .` and
// `go install github.com/cyberguardian/cyberguardian@latest` work from the
// module root. It behaves exactly like cmd/cyberguardian.
package main

import (
	"os"

	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
