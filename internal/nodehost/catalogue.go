package nodehost

import (
	"github.com/jmylchreest/colournodes/internal/colour"
	"github.com/jmylchreest/colournodes/pkg/node"
)

// Node names as registered with a host.
const (
	NodeHexToRGB        = "HexToRGB"
	NodeHexListToRGB    = "HexListToRGBTuples"
	NodeColorDescriptor = "ColorDescriptor"
)

// DefaultHexList is the sample input of the HexListToRGBTuples node.
const DefaultHexList = "#FF5733\n#33A1FF\n#808080"

// Catalogue returns the metadata for every node this module serves.
func Catalogue() []node.NodeInfo {
	modes := make([]string, 0, len(colour.Modes()))
	for _, m := range colour.Modes() {
		modes = append(modes, string(m))
	}

	return []node.NodeInfo{
		{
			Name:        NodeHexListToRGB,
			DisplayName: "Hex List to RGB Tuples",
			Category:    node.Category,
			Description: "Parse a block of hex colours into RGB triples, skipping invalid entries",
			Inputs: []node.Port{
				{Name: "hex_list", Type: "STRING", Default: DefaultHexList, Multiline: true},
				{Name: "normalize", Type: "BOOLEAN", Default: "false"},
			},
			Outputs: []node.Port{{Name: "rgb_tuples", Type: "LIST"}},
		},
		{
			Name:        NodeHexToRGB,
			DisplayName: "Hex to RGB",
			Category:    node.Category,
			Description: "Parse a single 6-digit hex colour",
			Inputs: []node.Port{
				{Name: "hex_code", Type: "STRING", Default: "#FF5733"},
				{Name: "normalize", Type: "BOOLEAN", Default: "false"},
			},
			Outputs: []node.Port{{Name: "rgb", Type: "RGB_TUPLE"}},
		},
		{
			Name:        NodeColorDescriptor,
			DisplayName: "Color Descriptor",
			Category:    node.Category,
			Description: "Name a colour by hue, optionally qualified by tone",
			Inputs: []node.Port{
				{Name: "rgb", Type: "RGB_TUPLE"},
				{Name: "mode", Type: "ENUM", Default: string(colour.ModeBasic), Options: modes},
			},
			Outputs: []node.Port{{Name: "descriptor", Type: "STRING"}},
		},
	}
}
