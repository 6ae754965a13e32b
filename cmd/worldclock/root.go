package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/noodlebox/worldclock/app"
	"github.com/noodlebox/worldclock/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "worldclock",
		Short:         "Show the current time around the world",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := bindSettings(cmd.Flags())
			if err != nil {
				return err
			}
			return runClock(cmd.Context(), s, app.Config{}, func(a *app.App) app.Program {
				return tea.NewProgram(a.Model(),
					tea.WithAltScreen(),
					tea.WithMouseCellMotion(),
				)
			})
		},
	}
	cmd.Flags().String("log-file", "", "append logs to this file (\"-\" for stderr)")
	cmd.Flags().String("log-level", logger.DefaultLevel, "log level: debug, info, warn, error")
	return cmd
}

// runClock builds the application from cfg and runs it in the program
// returned by newProgram. cfg.Logger is replaced by the configured logger. Every failure here happens before or instead of a clean
// shutdown and exits non-zero.
func runClock(ctx context.Context, s settings, cfg app.Config, newProgram func(*app.App) app.Program) error {
	w, err := logger.Open(s.LogFile)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	defer w.Close()

	l, err := logger.New(w, s.LogLevel)
	if err != nil {
		return withExitCode(errors.Wrap(err, "configure logging"), exitConfig)
	}

	cfg.Logger = l
	a, err := app.New(cfg)
	if err != nil {
		l.Error("startup failed", "err", err)
		return withExitCode(err, exitConfig)
	}
	if err := a.Run(ctx, newProgram(a)); err != nil {
		l.Error("window failed", "err", err)
		return withExitCode(err, exitUI)
	}
	return nil
}
