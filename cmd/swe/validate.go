package main

import (
	"fmt"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	"github.com/reglet-dev/swecommon/internal/domain/values"
	"github.com/reglet-dev/swecommon/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var validateOpts = DefaultCommonOptions()

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <definition.yaml>...",
	Short: "Validate element values against their constraints",
	Long: `Load one or more element definitions and check the value of every element.
An element is valid when it has a value and its constraint, if any, admits it.
Files are validated in parallel. The command fails if any element is invalid
or missing a value, or if a file cannot be loaded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(&validateOpts, runValidate),
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateOpts.RegisterFlags(validateCmd)

	validateCmd.Flags().Int("jobs", 0, "Maximum files validated in parallel (0 = number of CPUs)")
	if err := settings.BindPFlag(config.KeyMaxConcurrentFiles, validateCmd.Flags().Lookup("jobs")); err != nil {
		panic(err)
	}
}

func runValidate(ctx *CommandContext, _ *cobra.Command, args []string) error {
	report, err := ctx.Container.ValidateDefinitionsUseCase().Execute(ctx.Context, dto.ValidateRequest{
		Paths:              args,
		MaxConcurrentFiles: ctx.Container.Runtime().MaxConcurrentFiles,
	})
	if err != nil {
		return err
	}

	if err := ctx.Formatter.FormatReport(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if !report.Status.IsValid() {
		counts := report.Counts()
		return fmt.Errorf("validation failed: %d valid, %d invalid, %d missing",
			counts[values.StatusValid], counts[values.StatusInvalid], counts[values.StatusMissing])
	}
	return nil
}
