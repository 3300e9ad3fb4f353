package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kindsOpts = DefaultCommonOptions()

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered element kinds and their fields",
	Args:  cobra.NoArgs,
	RunE:  withContainer(&kindsOpts, runKinds),
}

func init() {
	rootCmd.AddCommand(kindsCmd)
	kindsOpts.RegisterFlags(kindsCmd)
}

func runKinds(ctx *CommandContext, _ *cobra.Command, _ []string) error {
	listing, err := ctx.Container.ListKindsUseCase().Execute()
	if err != nil {
		return err
	}

	if err := ctx.Formatter.FormatKinds(listing); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
