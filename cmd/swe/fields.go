package main

import (
	"fmt"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	"github.com/spf13/cobra"
)

var (
	fieldsOpts    = DefaultCommonOptions()
	fieldsElement string
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields <definition.yaml>",
	Short: "Show the fields each element exposes for a profile",
	Long: `Resolve the field table of every element in a definition for the requested
profile. A field is shown when its visibility shares a profile with the
request; fields keep their declaration order.

Profiles:
  simple   fields shown by the simple editor
  expert   fields shown by the expert editor
  value    fields shown when only the value is edited`,
	Args: cobra.ExactArgs(1),
	RunE: withContainer(&fieldsOpts, runFields),
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsOpts.RegisterFlags(fieldsCmd)

	fieldsCmd.Flags().StringVarP(&fieldsElement, "element", "e", "", "Only show the element with this identifier")
}

func runFields(ctx *CommandContext, _ *cobra.Command, args []string) error {
	listing, err := ctx.Container.ListFieldsUseCase().Execute(dto.ListFieldsRequest{
		Path:       args[0],
		Profile:    ctx.Container.Runtime().Profile,
		Identifier: fieldsElement,
	})
	if err != nil {
		return err
	}

	if err := ctx.Formatter.FormatFields(listing); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
