package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colournodes/internal/colour"
	"github.com/jmylchreest/colournodes/pkg/node"
)

// resolveMode returns the --mode flag when set, else the configured default.
func (a *app) resolveMode(cmd *cobra.Command, m *modeValue) colour.Mode {
	if cmd.Flags().Changed("mode") {
		return m.mode
	}
	return a.cfg.Mode
}

// tripleFromArgs reads a colour from --hex or three channel arguments.
func tripleFromArgs(cmd *cobra.Command, args []string, hex string, tools node.ColourTools) (colour.Triple, error) {
	if hex != "" {
		if len(args) > 0 {
			return colour.Triple{}, errors.New("--hex cannot be combined with channel arguments")
		}
		return tools.ParseHex(cmd.Context(), node.HexRequest{Hex: hex})
	}
	return parseTriple(args)
}

func newHSLCmd(a *app) *cobra.Command {
	var (
		hex     string
		inverse bool
	)

	cmd := &cobra.Command{
		Use:   "hsl <r> <g> <b>",
		Short: "Convert RGB to HSL",
		Long: `Convert an RGB colour to hue (degrees), saturation and lightness (percent).

Whole numbers are read as 8-bit channels. Fractional values are passed
through untagged, as a node host would send them.

Examples:
  colournodes hsl 255 87 51
  colournodes hsl --hex '#33A1FF'
  colournodes hsl --inverse 11 100 60`,
		Args: cobra.MaximumNArgs(3),
	}
	cmd.Flags().StringVar(&hex, "hex", "", "read the colour from a hex token")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "convert h s l arguments back to RGB")
	cmd.MarkFlagsMutuallyExclusive("hex", "inverse")

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, args []string, tools node.ColourTools) error {
		out := cmd.OutOrStdout()

		if inverse {
			hsl, err := parseHSL(args)
			if err != nil {
				return err
			}
			rgb := hsl.Inverse()
			fmt.Fprintf(out, "%s %s\n", rgb, rgb.Hex())
			return nil
		}

		t, err := tripleFromArgs(cmd, args, hex, tools)
		if err != nil {
			return err
		}
		hsl, err := tools.RGBToHSL(cmd.Context(), t)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hsl)
		return nil
	})
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		hex    string
		hslArg string
		mode   modeValue
	)

	cmd := &cobra.Command{
		Use:   "classify <r> <g> <b>",
		Short: "Name a colour",
		Long: `Name a colour by its hue. In extended mode the name is prefixed with a
tone qualifier such as "dark", "muted" or "vivid".

Examples:
  colournodes classify 255 87 51
  colournodes classify --mode extended --hex '#8B4513'
  colournodes classify --hsl 207,44,49 -m extended`,
		Args: cobra.MaximumNArgs(3),
	}
	cmd.Flags().StringVar(&hex, "hex", "", "read the colour from a hex token")
	cmd.Flags().StringVar(&hslArg, "hsl", "", "classify an HSL colour given as h,s,l")
	cmd.MarkFlagsMutuallyExclusive("hex", "hsl")
	addModeFlag(cmd.Flags(), &mode)

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, args []string, tools node.ColourTools) error {
		req := node.ClassifyRequest{Mode: string(a.resolveMode(cmd, &mode))}

		if hslArg != "" {
			if len(args) > 0 {
				return errors.New("--hsl cannot be combined with channel arguments")
			}
			hsl, err := parseHSL([]string{hslArg})
			if err != nil {
				return err
			}
			req.HSL = &hsl
		} else {
			t, err := tripleFromArgs(cmd, args, hex, tools)
			if err != nil {
				return err
			}
			req.RGB = &t
		}

		label, err := tools.Classify(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	})
	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	var (
		mode   modeValue
		format *formatValue
	)

	cmd := &cobra.Command{
		Use:   "describe [file|-]",
		Short: "Parse, convert and name a list of hex colours",
		Long: `Run every hex colour in a file or stdin through parsing, HSL conversion
and classification.

Examples:
  printf '#FF5733\n#33A1FF\n#808080\n' | colournodes describe -m extended
  colournodes describe --permissive -f json palette.txt`,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.Flags().Bool("permissive", false, "accept JSON lists and comma, semicolon or whitespace separators")
	cmd.Flags().Bool("preview", false, "show colour swatches (default: when stdout is a terminal)")
	addModeFlag(cmd.Flags(), &mode)
	format = addFormatFlag(cmd.Flags(), formatTable, formatText, formatJSON)

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, args []string, tools node.ColourTools) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		triples, err := tools.ParseHexBatch(ctx, node.BatchRequest{
			Text:       text,
			Permissive: boolOverride(cmd.Flags(), "permissive", a.cfg.Permissive),
		})
		if err != nil {
			return err
		}

		m := string(a.resolveMode(cmd, &mode))
		entries := make([]colourEntry, 0, len(triples))
		for _, t := range triples {
			hsl, err := tools.RGBToHSL(ctx, t)
			if err != nil {
				return err
			}
			label, err := tools.Classify(ctx, node.ClassifyRequest{HSL: &hsl, Mode: m})
			if err != nil {
				return err
			}
			entries = append(entries, colourEntry{Hex: t.RGB().Hex(), Triple: t, HSL: hsl, Label: label})
		}

		out := cmd.OutOrStdout()
		preview := a.preview(cmd)
		switch format.value {
		case formatJSON:
			return writeJSON(out, entries)
		case formatText:
			for _, e := range entries {
				fmt.Fprintln(out, line(e.Triple.RGB(), e.Hex+"  "+e.Label, preview))
			}
		default:
			table := NewTable([]string{"HEX", "RGB", "HSL", "NAME"})
			for _, e := range entries {
				table.AddRow(e.row(preview))
			}
			fmt.Fprint(out, table.Render())
		}
		return nil
	})
	return cmd
}
