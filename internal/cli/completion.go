package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for graphwalk.

To load completions:

Bash:
  $ source <(graphwalk completion bash)

Zsh:
  $ graphwalk completion zsh > "${fpath[1]}/_graphwalk"

Fish:
  $ graphwalk completion fish | source

PowerShell:
  PS> graphwalk completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeVertices offers the labels of the declared vertices for flags
// that name a vertex. The root hook does not build a graph for completion
// requests, so it is built here once cobra has parsed the flags on the
// command line being completed. Cobra may parse them twice on this path;
// the repeated labels and edges collapse in config.Build.
func (c *CLI) completeVertices(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := c.prepare(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var labels []string
	for _, v := range c.graph.Vertices() {
		if strings.HasPrefix(v.Value, toComplete) {
			labels = append(labels, v.Value)
		}
	}
	return labels, cobra.ShellCompDirectiveNoFileComp
}
