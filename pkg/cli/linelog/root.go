package linelog

import (
	"context"
	"fmt"
	"os"

	"github.com/kralicky/linelog/pkg/cli/linelog/commands"
	"github.com/kralicky/linelog/pkg/logger"
	"github.com/spf13/cobra"
)

// BuildRootCmd builds the root command, reading the program name and
// configuration from the process.
func BuildRootCmd() *cobra.Command {
	return BuildRootCmdWithConfig(logger.Config{})
}

// BuildRootCmdWithConfig builds the root command using base as the starting
// point for the logger configuration. Flags override the corresponding
// fields. If base has no Output, the command's error stream is used.
func BuildRootCmdWithConfig(base logger.Config) *cobra.Command {
	var logLevel string
	var clock string
	var color string
	rootCmd := &cobra.Command{
		Use:           "linelog",
		Short:         "Emit log lines in the linelog format.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := base
			if cfg.Output == nil {
				cfg.Output = cmd.ErrOrStderr()
			}
			var err error
			if cfg.Clock, err = logger.ParseClockKind(clock); err != nil {
				return err
			}
			if cfg.Color, err = logger.ParseColorMode(color); err != nil {
				return err
			}
			if logLevel != "" {
				level, err := logger.ParseLevel(logLevel)
				if err != nil {
					return err
				}
				cfg.Level = &level
				logger.BootstrapLevel.Set(level)
			}
			lg, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			cmd.SetContext(logger.ContextWithLogger(cmd.Context(), lg))
			return nil
		},
	}

	rootCmd.AddCommand(
		commands.BuildEmitCmd(),
		commands.BuildDemoCmd(),
		commands.BuildLevelsCmd(),
	)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off); overrides $LOGLEVEL")
	rootCmd.PersistentFlags().StringVar(&clock, "clock", "monotonic", "timestamp strategy (monotonic, calendar)")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", "colorize output (auto, always, never); overridden by $LOGSTYLE")

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx := context.Background()
	if err := BuildRootCmd().ExecuteContext(ctx); err != nil {
		logger.Bootstrap(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
