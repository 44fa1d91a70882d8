package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colournodes/internal/colour"
	"github.com/jmylchreest/colournodes/internal/image"
	"github.com/jmylchreest/colournodes/pkg/node"
)

func newSampleCmd(a *app) *cobra.Command {
	var mode modeValue

	cmd := &cobra.Command{
		Use:   "sample <image>",
		Short: "Name the average colour of an image",
		Long: `Average every pixel of an image and classify the result.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  colournodes sample wallpaper.jpg
  colournodes sample -m extended --preview photo.webp`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().Bool("preview", false, "show a colour swatch (default: when stdout is a terminal)")
	addModeFlag(cmd.Flags(), &mode)

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, args []string, tools node.ColourTools) error {
		path := args[0]
		if !image.IsImageFile(path) {
			return fmt.Errorf("unsupported image extension: %s (supported: %s)",
				path, strings.Join(image.SupportedImageExtensions(), ", "))
		}

		a.logger.Debug("sampling image", "path", path)
		rgb, err := image.SampleFile(image.NewFileLoader(), path)
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}

		t := colour.IntTriple(rgb)
		label, err := tools.Classify(cmd.Context(), node.ClassifyRequest{
			RGB:  &t,
			Mode: string(a.resolveMode(cmd, &mode)),
		})
		if err != nil {
			return err
		}

		text := fmt.Sprintf("%s  %s  %s", rgb.Hex(), t.HSL(), label)
		fmt.Fprintln(cmd.OutOrStdout(), line(rgb, text, a.preview(cmd)))
		return nil
	})
	return cmd
}
