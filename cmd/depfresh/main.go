package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/solentra/depfresh/pkg/config"
	"github.com/solentra/depfresh/pkg/depfresh"
	"github.com/solentra/depfresh/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	debug      bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.L().Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "depfresh",
		Short:        "Depfresh reports the release freshness of your workspace packages",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Init(debug)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("depfresh %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newOrderCmd())

	return rootCmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <package>",
		Short: "Check whether the latest release of a package pins outdated dependencies",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := strings.TrimSpace(args[0])
			if name == "" {
				logging.L().Fatal("Package name must not be empty")
			}

			cfg := loadConfig(cmd)
			if err := cfg.Validate(); err != nil {
				logging.L().Fatal("Invalid configuration", zap.Error(err))
			}
			app := newApp(cfg)

			result, err := app.Check(cmd.Context(), name)
			if err != nil {
				logging.L().Fatal("Failed to check package", zap.Error(err))
			}

			for _, mismatch := range result.Mismatches {
				fmt.Fprintln(cmd.ErrOrStderr(), mismatch.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Token())
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Render the release state of every workspace package",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app := newWorkspaceApp(cmd)

			rep, err := app.Report(cmd.Context())
			if err != nil {
				logging.L().Fatal("Failed to build report", zap.Error(err))
			}

			rep.Render(cmd.OutOrStdout())
		},
	}
}

func newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the workspace packages in dependency-first publish order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app := newWorkspaceApp(cmd)

			order, err := app.ReleaseOrder(cmd.Context())
			if err != nil {
				logging.L().Fatal("Failed to compute release order", zap.Error(err))
			}

			for _, name := range order {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// loadConfig reads the configuration file. Without an explicit --config flag a
// missing file is not an error: the defaults and DEPFRESH_* environment
// variables still apply.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
			cfg, err = config.LoadDefault()
			if err != nil {
				logging.L().Fatal("Failed to load config", zap.Error(err))
			}
			return cfg
		}
		logging.L().Fatal("Failed to load config", zap.Error(err))
	}
	return cfg
}

// newApp builds the application from the given configuration, reading the
// access tokens from the environment.
func newApp(cfg *config.Config) *depfresh.DepFresh {
	return depfresh.New(cfg, os.Getenv("NPM_TOKEN"), os.Getenv("GITHUB_TOKEN"))
}

// newWorkspaceApp builds the application for commands that read the whole
// workspace.
func newWorkspaceApp(cmd *cobra.Command) *depfresh.DepFresh {
	cfg := loadConfig(cmd)
	if err := cfg.Validate(); err != nil {
		logging.L().Fatal("Invalid configuration", zap.Error(err))
	}
	if err := cfg.ValidateWorkspace(); err != nil {
		logging.L().Fatal("Invalid workspace configuration", zap.Error(err))
	}
	if cfg.Workspace.Source == config.SourceGitHub && os.Getenv("GITHUB_TOKEN") == "" {
		logging.L().Fatal("GITHUB_TOKEN environment variable is not set")
	}
	return newApp(cfg)
}
