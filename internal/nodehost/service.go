// Package nodehost implements the colour nodes in-process and hosts them
// over go-plugin, either as a server or by launching a node binary.
package nodehost

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colournodes/internal/colour"
	"github.com/jmylchreest/colournodes/pkg/node"
)

// maxLoggedInput bounds how much of a rejected batch is echoed to the log.
const maxLoggedInput = 100

// Service implements node.ColourTools on top of the colour package.
type Service struct {
	logger hclog.Logger
}

var _ node.ColourTools = (*Service)(nil)

// NewService creates a Service. A nil logger discards all output.
func NewService(logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{logger: logger}
}

// ParseHex parses a single hex colour.
func (s *Service) ParseHex(_ context.Context, req node.HexRequest) (node.Triple, error) {
	t, err := colour.ParseHex(req.Hex, req.Normalize)
	if err != nil {
		return node.Triple{}, err
	}
	s.logger.Debug("parsed hex colour", "hex", req.Hex, "rgb", t.String())
	return t, nil
}

// ParseHexBatch parses every colour in req.Text. Invalid tokens are logged and skipped.
func (s *Service) ParseHexBatch(_ context.Context, req node.BatchRequest) ([]node.Triple, error) {
	text, sep := req.Text, colour.SeparatorNewline
	if req.Permissive {
		text, sep = NormaliseText(text), colour.SeparatorAny
	}

	res := colour.ScanHexBatch(text, sep, req.Normalize)
	for _, skipped := range res.Skipped {
		s.logger.Warn("skipping invalid hex code", "token", skipped.Token, "error", skipped.Err)
	}

	if len(res.Triples) == 0 {
		s.logger.Warn("no valid hex codes found", "input", truncate(req.Text, maxLoggedInput))
	} else {
		s.logger.Debug("converted hex codes", "count", len(res.Triples), "skipped", len(res.Skipped))
	}
	return res.Triples, nil
}

// RGBToHSL converts rgb to rounded HSL.
func (s *Service) RGBToHSL(_ context.Context, rgb node.Triple) (node.HSL, error) {
	return rgb.HSL(), nil
}

// Classify labels the RGB or HSL colour in req.
func (s *Service) Classify(_ context.Context, req node.ClassifyRequest) (string, error) {
	mode, err := colour.ParseMode(req.Mode)
	if err != nil {
		return "", err
	}

	switch {
	case req.RGB != nil && req.HSL != nil:
		return "", fmt.Errorf("%w: set either rgb or hsl, not both", node.ErrInvalidRequest)
	case req.HSL != nil:
		return colour.Classify(*req.HSL, mode), nil
	case req.RGB != nil:
		return colour.Describe(*req.RGB, mode), nil
	default:
		return "", fmt.Errorf("%w: rgb or hsl is required", node.ErrInvalidRequest)
	}
}

// Nodes returns the node catalogue.
func (s *Service) Nodes(_ context.Context) ([]node.NodeInfo, error) {
	return Catalogue(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
