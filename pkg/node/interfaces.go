package node

import "context"

// ColourTools is the capability set a colour node server exposes.
type ColourTools interface {
	// ParseHex parses a single 6-digit hex colour.
	ParseHex(ctx context.Context, req HexRequest) (Triple, error)

	// ParseHexBatch parses every colour in a block of text, dropping invalid tokens.
	ParseHexBatch(ctx context.Context, req BatchRequest) ([]Triple, error)

	// RGBToHSL converts an RGB triple to rounded HSL.
	RGBToHSL(ctx context.Context, rgb Triple) (HSL, error)

	// Classify returns a human-readable colour label.
	Classify(ctx context.Context, req ClassifyRequest) (string, error)

	// Nodes returns metadata for the nodes backed by this server.
	Nodes(ctx context.Context) ([]NodeInfo, error)
}
