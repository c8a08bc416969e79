package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/internal/config"
	"github.com/matzehuels/graphwalk/pkg/buildinfo"
	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "graphwalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flag values, read in PersistentPreRunE.
	configPath string
	vertices   []string
	edges      []string
	verbose    bool

	graph *config.LabeledGraph
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Graphwalk runs graph traversals from the command line",
		Long:          `Graphwalk builds an undirected graph from a TOML file or flags and prints depth-first, breadth-first and shortest-path traversals over it.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Completion requests run before their flags are parsed.
			if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
				return nil
			}
			if err := c.prepare(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "TOML file declaring log level, vertices and edges")
	flags.StringArrayVar(&c.vertices, "vertex", nil, "add a vertex (repeatable)")
	flags.StringArrayVar(&c.edges, "edge", nil, "add an edge as A:B (repeatable)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.dfsCommand())
	root.AddCommand(c.bfsCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ReportError writes err to w as a single line, without its error code.
func ReportError(w io.Writer, err error) {
	printError(w, "%s", gwerrors.UserMessage(err))
}

// prepare loads the config file, merges flag-declared vertices and edges,
// applies the log level and builds the graph.
func (c *CLI) prepare() error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		c.Logger.Debug("loaded config", "path", c.configPath)
	}

	if err := cfg.Extend(c.vertices, c.edges); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	observability.SetTraversalHooks(logHooks{logger: c.Logger})

	g, err := cfg.Build()
	if err != nil {
		return err
	}
	c.graph = g
	c.Logger.Debug("graph built", "vertices", g.Len(), "edges", g.EdgeCount())
	return nil
}
