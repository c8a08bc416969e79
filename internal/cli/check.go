package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/observability"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the graph and print statistics",
		Long: `Validate the structural invariants of the graph (symmetric adjacency, no
edges leaving the graph) and print vertex, edge and component counts.
Isolated vertices are listed as warnings.`,
		Example: `  graphwalk -c graph.toml check`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			g := c.graph

			if err := g.Validate(); err != nil {
				printError(out, "graph is invalid")
				return gwerrors.Wrap(gwerrors.ErrCodeInvalidGraph, err, "validate")
			}

			if g.Len() == 0 {
				printInfo(out, "graph is empty")
				return nil
			}

			end := observability.Span(cmd.Context(), observability.KindComponents, "")
			comps := components(g.Graph)
			end(len(comps), nil)
			printSuccess(out, "%s", StyleTitle.Render("Graph is valid"))
			printStats(out, g.Len(), g.EdgeCount(), len(comps))
			for i, comp := range comps {
				printKeyValue(out, "component "+strconv.Itoa(i+1), strconv.Itoa(len(comp))+" vertices")
			}
			for _, v := range g.Vertices() {
				if v.Degree() == 0 {
					printWarning(out, "vertex %s is isolated", v.Value)
				}
			}
			loggerFromContext(cmd.Context()).Debug("check finished", "valid", true)
			return nil
		},
	}

	return cmd
}

// components partitions g into connected components, each listed in
// breadth-first order from its earliest-inserted vertex. It relies on
// labels being unique, which a LabeledGraph guarantees.
func components(g *graph.Graph[string]) [][]string {
	seen := make(map[string]bool, g.Len())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v.Value] {
			continue
		}
		comp := g.BreadthFirstSearch(v)
		for _, label := range comp {
			seen[label] = true
		}
		out = append(out, comp)
	}
	return out
}
