package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colournodes/internal/colour"
)

// readInput returns the contents of the file named by args[0], or stdin when
// args is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 - user-specified input file
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// line prefixes text with a swatch of c when preview is set.
func line(c colour.RGB, text string, preview bool) string {
	if preview {
		return colour.WithSwatch(c, text)
	}
	return text
}

// colourEntry is the JSON and table form of one described colour.
type colourEntry struct {
	Hex    string        `json:"hex"`
	Triple colour.Triple `json:"rgb"`
	HSL    colour.HSL    `json:"hsl"`
	Label  string        `json:"label,omitempty"`
}

func (e colourEntry) row(preview bool) []string {
	hex := e.Hex
	if preview {
		hex = colour.WithSwatch(e.Triple.RGB(), hex)
	}
	row := []string{hex, e.Triple.String(), e.HSL.String()}
	if e.Label != "" {
		row = append(row, e.Label)
	}
	return row
}

// parseTriple reads three channel arguments. Whole numbers in [0,255] are
// 8-bit channels; anything else is passed through untagged.
func parseTriple(args []string) (colour.Triple, error) {
	if len(args) != 3 {
		return colour.Triple{}, fmt.Errorf("expected 3 channels, got %d", len(args))
	}

	var ints [3]uint8
	var floats [3]float64
	allInts := true
	for i, a := range args {
		if n, err := strconv.ParseUint(a, 10, 8); err == nil {
			ints[i] = uint8(n)
			floats[i] = float64(n)
			continue
		}
		allInts = false
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return colour.Triple{}, fmt.Errorf("invalid channel %q: %w", a, err)
		}
		floats[i] = f
	}

	if allInts {
		return colour.IntTriple(colour.RGB{R: ints[0], G: ints[1], B: ints[2]}), nil
	}
	return colour.Untagged(floats[0], floats[1], floats[2]), nil
}

// parseHSL reads "h,s,l" or three separate arguments.
func parseHSL(args []string) (colour.HSL, error) {
	if len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	if len(args) != 3 {
		return colour.HSL{}, fmt.Errorf("expected h,s,l, got %d values", len(args))
	}

	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(a), "%")))
		if err != nil {
			return colour.HSL{}, fmt.Errorf("invalid hsl component %q: %w", a, err)
		}
		v[i] = n
	}
	return colour.HSL{H: v[0], S: v[1], L: v[2]}, nil
}
