package main

import (
	"encoding/json"
	"fmt"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	"github.com/reglet-dev/swecommon/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	setOpts    = DefaultCommonOptions()
	setElement string
	setValue   string
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <definition.yaml>",
	Short: "Assign a JSON value to an element and report its validity",
	Long: `Assign a value to one element through its JSON value channel and show the
previous value, the new value and whether the constraint admits it.

The value must be a JSON primitive: a string, number, boolean or null
(null clears the value). Without --strict, rejected input is logged and the
element keeps its previous value; with --strict it fails the command.
The definition file itself is not modified.

Examples:
  swe set def.yaml --element phenomenonTime --json '"2010-05-05T00:00:00Z"'
  swe set def.yaml --element samples --json 42 --strict`,
	Args: cobra.ExactArgs(1),
	RunE: withContainer(&setOpts, runSet),
}

func init() {
	rootCmd.AddCommand(setCmd)
	setOpts.RegisterFlags(setCmd)

	setCmd.Flags().StringVarP(&setElement, "element", "e", "", "Identifier of the element to update")
	setCmd.Flags().StringVar(&setValue, "json", "", "JSON primitive to assign")
	setCmd.Flags().Bool("strict", false, "Fail on rejected input instead of keeping the previous value")
	_ = setCmd.MarkFlagRequired("element")
	_ = setCmd.MarkFlagRequired("json")

	if err := settings.BindPFlag(config.KeyStrict, setCmd.Flags().Lookup("strict")); err != nil {
		panic(err)
	}
}

func runSet(ctx *CommandContext, _ *cobra.Command, args []string) error {
	change, err := ctx.Container.SetValueUseCase().Execute(dto.SetValueRequest{
		Path:       args[0],
		Identifier: setElement,
		Value:      json.RawMessage(setValue),
		Strict:     ctx.Container.Runtime().Strict,
	})
	if err != nil {
		return err
	}

	if err := ctx.Formatter.FormatChange(change); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
