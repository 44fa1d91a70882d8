package nodehost

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/colournodes/pkg/node"
)

// Serve blocks serving impl to a go-plugin host over net/rpc.
// It must be started by a host that has set the handshake cookie.
func Serve(impl node.ColourTools, logger hclog.Logger) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: node.Handshake,
		Plugins:         node.PluginMap(impl),
		Logger:          logger,
	})
}
