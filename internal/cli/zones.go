package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ZonesOptions holds flags for the zones command.
type ZonesOptions struct {
	*RootOptions
	UserID int64
}

// ZoneListing is one entry of the zones command output.
type ZoneListing struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// NewZonesCommand creates the zones command.
func NewZonesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ZonesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the active zones for a scope",
		Long: `List the zones a scope would currently display: the default zones
plus every zone holding at least one visible item or flagged always
visible.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZones(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.UserID, "user", 0, "list the scope of a user id")

	return cmd
}

func runZones(opts *ZonesOptions, cmd *cobra.Command) error {
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

	active, err := env.projector.ActiveZones(cmd.Context(), scope)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list zones", err)
	}

	listings := make([]ZoneListing, 0, len(active))
	for _, zone := range active {
		listings = append(listings, ZoneListing{Name: zone, Label: env.cfg.ZoneLabel(zone)})
	}

	if formatter.Format == "json" {
		return formatter.Success(listings)
	}

	for _, listing := range listings {
		if listing.Label != listing.Name {
			fmt.Fprintf(formatter.Writer, "%s (%s)\n", listing.Name, listing.Label)
		} else {
			fmt.Fprintln(formatter.Writer, listing.Name)
		}
	}
	return nil
}
