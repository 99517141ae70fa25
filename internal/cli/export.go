package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	UserID int64
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the stored configuration rows of a scope",
		Long: `Dump the flat configuration rows stored for a scope as JSON.

The output is the same row shape the save endpoint accepts, so an export
can be re-posted to another deployment to clone a configuration.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.UserID, "user", 0, "export the scope of a user id")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
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
	formatter.VerboseLog("Exporting layout %s", scope.Layout)

	rows, err := env.store.ConfigRows(cmd.Context(), scope)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read configuration", err)
	}
	if rows == nil {
		rows = []menu.ConfigRow{}
	}

	if formatter.Format == "json" {
		return formatter.Success(rows)
	}

	// Text format prints the raw row array; it is data, not prose.
	encoder := json.NewEncoder(formatter.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	return nil
}
