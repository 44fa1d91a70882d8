package node

import (
	"context"
	"errors"
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/colournodes/internal/colour"
)

// ErrInvalidRequest is returned for requests a node cannot act on,
// such as a ClassifyRequest with neither RGB nor HSL set.
var ErrInvalidRequest = errors.New("invalid node request")

// Error kinds carried across the RPC boundary.
const (
	KindFormat   = "format"
	KindMode     = "mode"
	KindRequest  = "request"
	KindInternal = "internal"
)

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Kind    string
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}

// Unwrap maps the error kind back to its sentinel so errors.Is works on the client side.
func (e *RPCError) Unwrap() error {
	switch e.Kind {
	case KindFormat:
		return colour.ErrInvalidHex
	case KindMode:
		return colour.ErrUnknownMode
	case KindRequest:
		return ErrInvalidRequest
	default:
		return nil
	}
}

// toRPCError flattens err into a gob-encodable form.
func toRPCError(err error) *RPCError {
	if err == nil {
		return nil
	}
	kind := KindInternal
	switch {
	case errors.Is(err, colour.ErrInvalidHex):
		kind = KindFormat
	case errors.Is(err, colour.ErrUnknownMode):
		kind = KindMode
	case errors.Is(err, ErrInvalidRequest):
		kind = KindRequest
	}
	return &RPCError{Kind: kind, Message: err.Error()}
}

// errOrNil avoids returning a typed nil pointer as a non-nil error.
func errOrNil(e *RPCError) error {
	if e == nil {
		return nil
	}
	return e
}

// TripleResponse is the RPC reply for ParseHex.
type TripleResponse struct {
	Triple Triple
	Err    *RPCError
}

// BatchResponse is the RPC reply for ParseHexBatch.
type BatchResponse struct {
	Triples []Triple
	Err     *RPCError
}

// HSLResponse is the RPC reply for RGBToHSL.
type HSLResponse struct {
	HSL HSL
	Err *RPCError
}

// LabelResponse is the RPC reply for Classify.
type LabelResponse struct {
	Label string
	Err   *RPCError
}

// ColourToolsRPC implements the go-plugin Plugin interface for colour nodes.
type ColourToolsRPC struct {
	plugin.Plugin
	Impl ColourTools
}

// Server returns an RPC server for this plugin.
func (p *ColourToolsRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ColourToolsRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ColourToolsRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ColourToolsRPCClient{client: c}, nil
}

// ColourToolsRPCServer is the RPC server implementation for colour nodes.
type ColourToolsRPCServer struct {
	Impl ColourTools
}

// ParseHex implements the RPC method for single hex parsing.
func (s *ColourToolsRPCServer) ParseHex(req HexRequest, resp *TripleResponse) error {
	t, err := s.Impl.ParseHex(context.Background(), req)
	resp.Triple = t
	resp.Err = toRPCError(err)
	return nil
}

// ParseHexBatch implements the RPC method for batch hex parsing.
func (s *ColourToolsRPCServer) ParseHexBatch(req BatchRequest, resp *BatchResponse) error {
	ts, err := s.Impl.ParseHexBatch(context.Background(), req)
	resp.Triples = ts
	resp.Err = toRPCError(err)
	return nil
}

// RGBToHSL implements the RPC method for HSL conversion.
func (s *ColourToolsRPCServer) RGBToHSL(rgb Triple, resp *HSLResponse) error {
	hsl, err := s.Impl.RGBToHSL(context.Background(), rgb)
	resp.HSL = hsl
	resp.Err = toRPCError(err)
	return nil
}

// Classify implements the RPC method for colour classification.
func (s *ColourToolsRPCServer) Classify(req ClassifyRequest, resp *LabelResponse) error {
	label, err := s.Impl.Classify(context.Background(), req)
	resp.Label = label
	resp.Err = toRPCError(err)
	return nil
}

// Nodes implements the RPC method for fetching node metadata.
func (s *ColourToolsRPCServer) Nodes(_ any, resp *[]NodeInfo) error {
	nodes, err := s.Impl.Nodes(context.Background())
	if err != nil {
		return err
	}
	*resp = nodes
	return nil
}

// ColourToolsRPCClient is the RPC client implementation for colour nodes.
type ColourToolsRPCClient struct {
	client *rpc.Client
}

// ParseHex calls the remote ParseHex method.
func (c *ColourToolsRPCClient) ParseHex(_ context.Context, req HexRequest) (Triple, error) {
	var resp TripleResponse
	if err := c.client.Call("Plugin.ParseHex", req, &resp); err != nil {
		return Triple{}, err
	}
	return resp.Triple, errOrNil(resp.Err)
}

// ParseHexBatch calls the remote ParseHexBatch method.
func (c *ColourToolsRPCClient) ParseHexBatch(_ context.Context, req BatchRequest) ([]Triple, error) {
	var resp BatchResponse
	if err := c.client.Call("Plugin.ParseHexBatch", req, &resp); err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	// gob sends empty slices as nil.
	if resp.Triples == nil {
		resp.Triples = []Triple{}
	}
	return resp.Triples, nil
}

// RGBToHSL calls the remote RGBToHSL method.
func (c *ColourToolsRPCClient) RGBToHSL(_ context.Context, rgb Triple) (HSL, error) {
	var resp HSLResponse
	if err := c.client.Call("Plugin.RGBToHSL", rgb, &resp); err != nil {
		return HSL{}, err
	}
	return resp.HSL, errOrNil(resp.Err)
}

// Classify calls the remote Classify method.
func (c *ColourToolsRPCClient) Classify(_ context.Context, req ClassifyRequest) (string, error) {
	var resp LabelResponse
	if err := c.client.Call("Plugin.Classify", req, &resp); err != nil {
		return "", err
	}
	return resp.Label, errOrNil(resp.Err)
}

// Nodes calls the remote Nodes method.
func (c *ColourToolsRPCClient) Nodes(_ context.Context) ([]NodeInfo, error) {
	var nodes []NodeInfo
	err := c.client.Call("Plugin.Nodes", new(any), &nodes)
	return nodes, err
}
