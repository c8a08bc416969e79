package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/observability"
)

// dfsCommand creates the dfs command.
func (c *CLI) dfsCommand() *cobra.Command {
	var (
		start     string
		iterative bool
	)

	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Print the depth-first order from a start vertex",
		Long: `Print the depth-first preorder of every vertex reachable from --start.

Neighbours are explored in the order their edges were declared. With
--iterative an explicit stack is used; its order is also depth-first but
generally differs from the recursive order.`,
		Example: `  graphwalk --vertex A --vertex B --vertex C --edge A:B --edge B:C dfs --start A
  graphwalk -c graph.toml dfs --start A --iterative`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.graph.Vertex(start)
			if err != nil {
				return err
			}

			mode, kind := "recursive", observability.KindDFS
			if iterative {
				mode, kind = "iterative", observability.KindDFSIterative
			}

			end := observability.Span(cmd.Context(), kind, start)
			var order []string
			if iterative {
				order = c.graph.DepthFirstSearchIterative(v)
			} else {
				order = c.graph.DepthFirstSearch(v)
			}
			end(len(order), nil)

			out := cmd.OutOrStdout()
			printSuccess(out, "%s from %s (%s, %d vertices)", StyleTitle.Render("Depth-first"), StyleValue.Render(start), mode, len(order))
			printSequence(out, order)
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "vertex to start from")
	cmd.Flags().BoolVarP(&iterative, "iterative", "i", false, "use the stack-based traversal")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.RegisterFlagCompletionFunc("start", c.completeVertices)

	return cmd
}

// bfsCommand creates the bfs command.
func (c *CLI) bfsCommand() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Print the breadth-first order from a start vertex",
		Long: `Print every vertex reachable from --start in breadth-first order: all
vertices one edge away, then two edges away, and so on.`,
		Example: `  graphwalk -c graph.toml bfs --start A`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.graph.Vertex(start)
			if err != nil {
				return err
			}

			end := observability.Span(cmd.Context(), observability.KindBFS, start)
			order := c.graph.BreadthFirstSearch(v)
			end(len(order), nil)

			out := cmd.OutOrStdout()
			printSuccess(out, "%s from %s (%d vertices)", StyleTitle.Render("Breadth-first"), StyleValue.Render(start), len(order))
			printSequence(out, order)
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "vertex to start from")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.RegisterFlagCompletionFunc("start", c.completeVertices)

	return cmd
}
