package node

import "github.com/jmylchreest/colournodes/internal/colour"

// Triple is an RGB triple tagged with its channel scale.
type Triple = colour.Triple

// HSL is a rounded hue, saturation and lightness.
type HSL = colour.HSL

// HexRequest is the input of the HexToRGB node.
type HexRequest struct {
	Hex       string `json:"hex_code"`
	Normalize bool   `json:"normalize"`
}

// BatchRequest is the input of the HexListToRGBTuples node.
// Permissive accepts JSON-encoded lists and comma, semicolon or space separators.
type BatchRequest struct {
	Text       string `json:"hex_list"`
	Normalize  bool   `json:"normalize"`
	Permissive bool   `json:"permissive"`
}

// ClassifyRequest is the input of the ColorDescriptor node.
// Exactly one of RGB and HSL must be set.
type ClassifyRequest struct {
	RGB  *Triple `json:"rgb,omitempty"`
	HSL  *HSL    `json:"hsl,omitempty"`
	Mode string  `json:"mode"`
}

// Port describes one input or output of a node.
type Port struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Default   string   `json:"default,omitempty"`
	Multiline bool     `json:"multiline,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// NodeInfo describes a node to a host.
type NodeInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Inputs      []Port `json:"inputs"`
	Outputs     []Port `json:"outputs"`
}
