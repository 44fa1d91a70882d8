// Package cli provides the command-line interface for colournodes.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colournodes/internal/config"
	"github.com/jmylchreest/colournodes/internal/nodehost"
	"github.com/jmylchreest/colournodes/internal/version"
	"github.com/jmylchreest/colournodes/pkg/node"
)

// app holds state shared by every command in one invocation.
type app struct {
	configPath string
	pluginPath string
	verbose    bool
	quiet      bool

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the colournodes command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colournodes",
		Short: "Parse, convert and name colours",
		Long: `colournodes parses hex colour codes into RGB, converts RGB to HSL and
names colours by hue and tone.

The same operations are served to node hosts over go-plugin with
"colournodes serve", and can be routed to another node binary with --plugin.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/colournodes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.pluginPath, "plugin", "", "route node calls through an external node binary")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newHexCmd(a),
		newBatchCmd(a),
		newHSLCmd(a),
		newClassifyCmd(a),
		newDescribeCmd(a),
		newSampleCmd(a),
		newNodesCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, optional := a.configPath, false
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path, optional = p, true
		}
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	if a.pluginPath != "" {
		cfg.PluginPath = a.pluginPath
	}
	a.cfg = cfg

	level := cfg.Level()
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colournodes",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
	a.logger.Debug("configuration loaded", "path", path, "mode", cfg.Mode, "plugin", cfg.PluginPath)
	return nil
}

// backend returns the node implementation commands should call and a function
// that releases it.
func (a *app) backend() (node.ColourTools, func(), error) {
	if a.cfg.PluginPath == "" {
		return nodehost.NewService(a.logger), func() {}, nil
	}

	executor, err := nodehost.NewExecutor(a.cfg.PluginPath, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load node plugin: %w", err)
	}
	a.logger.Debug("using external node", "path", a.cfg.PluginPath)
	return executor, executor.Close, nil
}

// withBackend adapts fn into a cobra RunE that opens and releases the backend.
func (a *app) withBackend(fn func(cmd *cobra.Command, args []string, tools node.ColourTools) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		tools, release, err := a.backend()
		if err != nil {
			return err
		}
		defer release()
		return fn(cmd, args, tools)
	}
}

// preview reports whether colour swatches should be drawn to the command output.
// An explicit --preview flag wins over the config and TTY detection.
func (a *app) preview(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("preview"); f != nil && f.Changed {
		return boolOverride(cmd.Flags(), "preview", false)
	}
	return a.cfg.Preview && isTerminal(cmd.OutOrStdout())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
