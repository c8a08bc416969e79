package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/observability"
)

// pathCommand creates the path command.
func (c *CLI) pathCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print a shortest path between two vertices",
		Long: `Print one path with the fewest edges from --from to --to.

Exits with an error when --to cannot be reached from --from.`,
		Example: `  graphwalk -c graph.toml path --from A --to D`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.graph.Vertex(from)
			if err != nil {
				return err
			}
			dst, err := c.graph.Vertex(to)
			if err != nil {
				return err
			}

			end := observability.Span(cmd.Context(), observability.KindShortestPath, from)
			path, err := c.graph.ShortestPath(src, dst)
			end(len(path), err)
			if errors.Is(err, graph.ErrPathNotFound) {
				return gwerrors.Wrap(gwerrors.ErrCodePathNotFound, err, "%s is not reachable from %s", to, from)
			}
			if err != nil {
				return gwerrors.Wrap(gwerrors.ErrCodeInternal, err, "shortest path")
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "%s from %s to %s (%s hops)",
				StyleTitle.Render("Shortest path"), StyleValue.Render(from), StyleValue.Render(to),
				StyleNumber.Render(strconv.Itoa(len(path)-1)))
			printSequence(out, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start vertex")
	cmd.Flags().StringVar(&to, "to", "", "end vertex")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.RegisterFlagCompletionFunc("from", c.completeVertices)
	_ = cmd.RegisterFlagCompletionFunc("to", c.completeVertices)

	return cmd
}
