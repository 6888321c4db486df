// Package lead holds the `leadboard lead` subcommands.
package lead

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/models"
	leadservice "github.com/thenoetrevino/leadboard/internal/services/lead"
)

// LeadCmd returns the lead parent command
func LeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage leads",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// addOutputFlags adds the agent-friendly flags every command carries.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

func openCLI(cmd *cobra.Command, f *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, f.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// failLead reports a service error with the exit code matching its kind.
func failLead(f *cli.OutputFormatter, err error) error {
	switch {
	case errors.Is(err, models.ErrLeadNotFound):
		return f.Fail(cli.ExitNotFound, "LEAD_NOT_FOUND", err,
			"Use 'leadboard lead list' to see available leads")
	case models.IsUnknownStatus(err):
		return f.Fail(cli.ExitValidation, "INVALID_STATUS", err, statusSuggestion())
	case isValidation(err):
		return f.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
	default:
		return f.Fail(cli.ExitError, "LEAD_ERROR", err, "")
	}
}

func isValidation(err error) bool {
	for _, target := range []error{
		leadservice.ErrEmptyName,
		leadservice.ErrNameTooLong,
		leadservice.ErrInvalidLeadID,
		leadservice.ErrInvalidPriority,
		leadservice.ErrInvalidEstimate,
		leadservice.ErrNotesTooLong,
		leadservice.ErrEmptyUpdate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func statusSuggestion() string {
	s := "Valid statuses:"
	for _, st := range models.Statuses() {
		s += " " + string(st)
	}
	return s
}

// leadID reads the lead id from the first positional arg or --id.
func leadID(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	id, _ := cmd.Flags().GetString("id")
	return id
}
