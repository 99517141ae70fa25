package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackhaven/zonemenu/internal/discovery"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definitions-dir>",
		Short: "Validate menu definition files",
		Long: `Validate the CUE menu definitions in a directory.

Performs syntax checking and schema validation without touching the
database. Use during development to catch malformed definitions before
serving them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	formatter.VerboseLog("Validating definitions in %s", dir)

	if err := discovery.Validate(dir); err != nil {
		code := discovery.ErrCodeGeneric
		var defErr *discovery.DefinitionError
		if errors.As(err, &defErr) {
			code = defErr.Code
		}

		if formatter.Format == "json" {
			_ = formatter.Error(code, err.Error(), ValidationResult{Valid: false, Code: code, Error: err.Error()})
		} else {
			fmt.Fprintln(formatter.Writer, "✗ Validation failed")
			fmt.Fprintf(formatter.Writer, "  %s\n", err.Error())
		}
		return NewExitError(ExitFailure, "validation failed")
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ Definitions valid")
	return nil
}
