package nodehost

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/colournodes/pkg/node"
)

// Executor runs a colour node binary and forwards calls to it over RPC.
// The child process is started lazily on the first call.
type Executor struct {
	path   string
	logger hclog.Logger
	client *plugin.Client
	tools  node.ColourTools
}

var _ node.ColourTools = (*Executor)(nil)

// NewExecutor creates an Executor for the node binary at path.
func NewExecutor(path string, logger hclog.Logger) (*Executor, error) {
	if path == "" {
		return nil, fmt.Errorf("node plugin path cannot be empty")
	}
	if _, err := exec.LookPath(path); err != nil {
		return nil, fmt.Errorf("node plugin not executable: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Executor{path: path, logger: logger}, nil
}

// connect starts the plugin process and dispenses the colour tools client.
func (e *Executor) connect() (node.ColourTools, error) {
	if e.tools != nil {
		return e.tools, nil
	}

	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  node.Handshake,
		Plugins:          node.PluginMap(nil),
		Cmd:              exec.Command(e.path, "serve"), // #nosec G204 - user-selected node binary
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           e.logger.Named("plugin"),
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(node.PluginName)
	if err != nil {
		e.client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	tools, ok := raw.(node.ColourTools)
	if !ok {
		e.client.Kill()
		return nil, fmt.Errorf("plugin %s returned unexpected type %T", node.PluginName, raw)
	}
	e.tools = tools
	return tools, nil
}

// ParseHex forwards to the node binary.
func (e *Executor) ParseHex(ctx context.Context, req node.HexRequest) (node.Triple, error) {
	tools, err := e.connect()
	if err != nil {
		return node.Triple{}, err
	}
	return tools.ParseHex(ctx, req)
}

// ParseHexBatch forwards to the node binary.
func (e *Executor) ParseHexBatch(ctx context.Context, req node.BatchRequest) ([]node.Triple, error) {
	tools, err := e.connect()
	if err != nil {
		return nil, err
	}
	return tools.ParseHexBatch(ctx, req)
}

// RGBToHSL forwards to the node binary.
func (e *Executor) RGBToHSL(ctx context.Context, rgb node.Triple) (node.HSL, error) {
	tools, err := e.connect()
	if err != nil {
		return node.HSL{}, err
	}
	return tools.RGBToHSL(ctx, rgb)
}

// Classify forwards to the node binary.
func (e *Executor) Classify(ctx context.Context, req node.ClassifyRequest) (string, error) {
	tools, err := e.connect()
	if err != nil {
		return "", err
	}
	return tools.Classify(ctx, req)
}

// Nodes forwards to the node binary.
func (e *Executor) Nodes(ctx context.Context) ([]node.NodeInfo, error) {
	tools, err := e.connect()
	if err != nil {
		return nil, err
	}
	return tools.Nodes(ctx)
}

// Close stops the plugin process.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.tools = nil
	}
}
