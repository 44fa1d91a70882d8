package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colournodes/pkg/node"
)

func newHexCmd(a *app) *cobra.Command {
	var format *formatValue

	cmd := &cobra.Command{
		Use:   "hex <token>",
		Short: "Parse a single hex colour",
		Long: `Parse a 6-digit hex colour, with or without a leading '#', into an RGB triple.

Examples:
  colournodes hex '#FF5733'
  colournodes hex --normalize 33a1ff
  colournodes hex -f json '#808080'`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().Bool("normalize", false, "emit channels in [0,1]")
	cmd.Flags().Bool("preview", false, "show a colour swatch (default: when stdout is a terminal)")
	format = addFormatFlag(cmd.Flags(), formatText, formatJSON)

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, args []string, tools node.ColourTools) error {
		req := node.HexRequest{
			Hex:       args[0],
			Normalize: boolOverride(cmd.Flags(), "normalize", a.cfg.Normalize),
		}
		t, err := tools.ParseHex(cmd.Context(), req)
		if err != nil {
			return err
		}

		if format.value == formatJSON {
			return writeJSON(cmd.OutOrStdout(), t)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line(t.RGB(), t.String(), a.preview(cmd)))
		return nil
	})
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var format *formatValue

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Parse a list of hex colours",
		Long: `Parse one hex colour per line from a file or stdin. Invalid lines are
skipped with a warning.

With --permissive, JSON-encoded lists, escaped newlines and comma,
semicolon or whitespace separators are also accepted.

Examples:
  printf '#FF5733\n#33A1FF\n' | colournodes batch
  colournodes batch --permissive -f table palette.txt
  echo '["#c03b88","#e06c4d"]' | colournodes batch --permissive --normalize -f json`,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.Flags().Bool("normalize", false, "emit channels in [0,1]")
	cmd.Flags().Bool("permissive", false, "accept JSON lists and comma, semicolon or whitespace separators")
	cmd.Flags().Bool("preview", false, "show colour swatches (default: when stdout is a terminal)")
	format = addFormatFlag(cmd.Flags(), formatText, formatJSON, formatTable)

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, args []string, tools node.ColourTools) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		triples, err := tools.ParseHexBatch(cmd.Context(), node.BatchRequest{
			Text:       text,
			Normalize:  boolOverride(cmd.Flags(), "normalize", a.cfg.Normalize),
			Permissive: boolOverride(cmd.Flags(), "permissive", a.cfg.Permissive),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		preview := a.preview(cmd)
		switch format.value {
		case formatJSON:
			return writeJSON(out, triples)
		case formatTable:
			table := NewTable([]string{"HEX", "RGB", "HSL"})
			for _, t := range triples {
				table.AddRow(colourEntry{Hex: t.RGB().Hex(), Triple: t, HSL: t.HSL()}.row(preview))
			}
			fmt.Fprint(out, table.Render())
		default:
			for _, t := range triples {
				fmt.Fprintln(out, line(t.RGB(), t.String(), preview))
			}
		}
		return nil
	})
	return cmd
}
