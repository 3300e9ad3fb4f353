package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/swecommon/internal/application/ports"
	"github.com/reglet-dev/swecommon/internal/infrastructure/config"
	"github.com/reglet-dev/swecommon/internal/infrastructure/container"
	"github.com/spf13/cobra"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	Formatter ports.OutputFormatter
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with configuration loading,
// container initialization and formatter selection.
func withContainer(opts *CommonOptions, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		runtime, err := config.FromViper(settings)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger := slog.Default()

		c, err := container.New(container.Options{
			Logger:  logger,
			Runtime: runtime,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		formatter, err := c.FormatterFactory().Create(runtime.Format, cmd.OutOrStdout(), ports.FormatterOptions{
			Indent: true,
			Color:  !opts.NoColor,
		})
		if err != nil {
			return err
		}

		ctx, cancel := opts.ApplyToContext(cmd.Context())
		defer cancel()

		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
			Formatter: formatter,
		}, cmd, args)
	}
}
