// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/internal/phishing"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <link>...",
		Short: "Check links the same way the phishing screen does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, link := range args {
				verdict := phishing.Check(link)
				logging.Debugf("checked link, verdict=%s", verdict)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.check.result", link, verdict)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
