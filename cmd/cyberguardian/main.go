// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Command cyberguardian launches the Cyber Guardian terminal UI.
//
// Usage:
//
//	cyberguardian [flags]
//	cyberguardian check <link>...
//
// See --help for all commands.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/ui/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
