package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colournodes/internal/nodehost"
	"github.com/jmylchreest/colournodes/pkg/node"
)

func newNodesCmd(a *app) *cobra.Command {
	var format *formatValue

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the nodes served to hosts",
		Args:  cobra.NoArgs,
	}
	format = addFormatFlag(cmd.Flags(), formatTable, formatJSON)

	cmd.RunE = a.withBackend(func(cmd *cobra.Command, _ []string, tools node.ColourTools) error {
		nodes, err := tools.Nodes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list nodes: %w", err)
		}

		if format.value == formatJSON {
			return writeJSON(cmd.OutOrStdout(), nodes)
		}

		table := NewTable([]string{"NAME", "CATEGORY", "INPUTS", "OUTPUTS", "DESCRIPTION"})
		table.SetColumnMaxWidth(4, 40)
		for _, n := range nodes {
			table.AddRow([]string{n.Name, n.Category, portNames(n.Inputs), portNames(n.Outputs), n.Description})
		}
		fmt.Fprint(cmd.OutOrStdout(), table.Render())
		return nil
	})
	return cmd
}

func portNames(ports []node.Port) string {
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the colour nodes to a go-plugin host",
		Long: `Serve the colour nodes over go-plugin net/rpc.

This command is started by a node host, which sets the handshake
cookie. Run by hand it prints a notice and exits.`,
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			// go-plugin hosts parse JSON log lines from the plugin's stderr.
			logger := hclog.New(&hclog.LoggerOptions{
				Name:       "colournodes",
				Level:      a.logger.GetLevel(),
				Output:     os.Stderr,
				JSONFormat: true,
			})
			nodehost.Serve(nodehost.NewService(logger), logger)
		},
	}
}
