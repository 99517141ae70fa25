package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackhaven/zonemenu/internal/render"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	UserID int64
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <zone>",
		Short: "Print the projected tree of a zone",
		Long: `Project the stored configuration into a zone tree and print it.

Example:
  zonemenu render sidebar
  zonemenu render topbar --user 7 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.UserID, "user", 0, "render the scope of a user id")

	return cmd
}

func runRender(opts *RenderOptions, zone string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	env, cleanup, err := openEnvironment(opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	scope := env.scopeFor(opts.UserID)
	formatter.VerboseLog("Rendering zone %s for layout %s", zone, scope.Layout)

	tree, err := env.projector.Project(cmd.Context(), scope, zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to render zone", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(tree)
	}

	if len(tree.Nodes) == 0 {
		fmt.Fprintf(formatter.Writer, "%s: (empty)\n", zone)
		return nil
	}
	fmt.Fprintf(formatter.Writer, "%s:\n", zone)
	printNodes(formatter, tree.Nodes, 1)
	return nil
}

func printNodes(formatter *OutputFormatter, nodes []render.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		if node.Icon != "" {
			fmt.Fprintf(formatter.Writer, "%s%s [%s]\n", indent, node.Label, node.Icon)
		} else {
			fmt.Fprintf(formatter.Writer, "%s%s\n", indent, node.Label)
		}
		printNodes(formatter, node.Children, depth+1)
	}
}
