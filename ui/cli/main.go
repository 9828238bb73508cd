// Copyright (c) 2026 Cyber Guardian Team
// Cyber Guardian - mobile security companion
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// startup path that every subcommand runs through.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/cyberguardian/cyberguardian/buildvars"
	"github.com/cyberguardian/cyberguardian/config"
	"github.com/cyberguardian/cyberguardian/internal/i18n"
	"github.com/cyberguardian/cyberguardian/internal/logging"
	"github.com/cyberguardian/cyberguardian/ui/tui"
)

const modulePath = "github.com/cyberguardian/cyberguardian"

var (
	cfgFile string
	verbose bool

	appConfig config.Config
	// configMissing is set when no config file was found during startup.
	configMissing bool
)

// isTerminal reports whether the TUI can draw on stdout. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI starts the interface. Tests replace it.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	configMissing = false
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		configMissing = true
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if verbose {
		appConfig.Log.Level = "debug"
	}
	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v, keeping current level", err)
	}

	if _, ok := i18n.GetAvailableLocales()[appConfig.Language]; !ok {
		logging.Warnf("unknown language %q, falling back to English", appConfig.Language)
	}
	i18n.Init(appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. cmd/cyberguardian calls it and handles
// the process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with all subcommands. Each call
// returns a fresh tree so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cyberguardian",
		Short: "Cyber Guardian is a pocket security companion for your terminal.",
		Long: `Cyber Guardian walks you through a security overview, an app
permission scanner, cyber awareness tips and a phishing link checker.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runInteractive,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("language", "", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log.level", "", `Log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().String("log.file", "", "Write logs to this file while the TUI runs")

	cmd.AddCommand(
		newVersionCmd(),
		newCheckCmd(),
		newConfigCmd(),
	)

	return cmd
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New(i18n.T("cli.not_a_terminal"))
	}

	if configMissing {
		if path, err := config.WriteConfigFile(&appConfig, false); err != nil {
			logging.Warnf("could not write default config file: %v", err)
		} else {
			logging.Infof("wrote default config to %s", path)
		}
	}

	// the alt screen owns the terminal, keep log lines off it
	closer, err := logging.OpenFile(appConfig.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	defer logging.SetOutput(os.Stderr)

	logging.With("session", uuid.NewString())
	logging.Infof("starting %s", compositeVersion())

	return runTUI(cmd.Context(), tui.Options{AltScreen: appConfig.UI.AltScreen})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := resolveBuildVersion(nil)
			printVersion(cmd.OutOrStdout(), v, c, d)
		},
	}
}

func printVersion(w io.Writer, v, c, d string) {
	_, _ = fmt.Fprintf(w, "version: %s\n", v)
	_, _ = fmt.Fprintf(w, "commit: %s\n", c)
	if d != "" {
		_, _ = fmt.Fprintf(w, "built: %s\n", d)
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.GitCommit
	if resolvedCommit == "" {
		resolvedCommit = "dev"
	}
	resolvedDate := buildvars.BuildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info == nil {
		return resolvedVersion, resolvedCommit, resolvedDate
	}

	if resolvedVersion == "dev" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		} else {
			// installed as a dependency of another main module
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" && resolvedCommit == "dev" {
				resolvedCommit = s.Value
			}
		case "vcs.time":
			if s.Value != "" && resolvedDate == "" {
				resolvedDate = s.Value
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

// ExecuteContext is Execute with a caller supplied context, which the TUI
// observes for cancellation.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
