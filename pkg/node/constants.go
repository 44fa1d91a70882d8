// Package node provides the public API for serving and calling colour nodes
// over the go-plugin RPC protocol.
package node

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current node API version.
	// Format: MAJOR.MINOR.PATCH.
	ProtocolVersion = "1.0.0"

	// PluginName is the name the colour tools are dispensed under.
	PluginName = "colourtools"

	// Category groups the nodes in a host's node menu.
	Category = "ColorTools"
)

// Handshake is the handshake configuration for go-plugin protocol.
// Hosts and node servers only connect when the major version and cookie match.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "COLOURNODES_PLUGIN",
	MagicCookieValue: "colournodes_colour_tools",
}

// PluginMap returns the go-plugin plugin set for impl.
// Hosts pass a nil impl.
func PluginMap(impl ColourTools) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginName: &ColourToolsRPC{Impl: impl},
	}
}
