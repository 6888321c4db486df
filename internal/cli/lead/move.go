package lead

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/reconcile"
)

// MoveCmd returns the lead move subcommand. It runs the same optimistic
// status change the board uses, so a rejected write is reported and the
// lead keeps its old stage.
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <status>",
		Short: "Move a lead to another pipeline stage",
		Long: `Move a lead to the end of another pipeline stage.

Examples:
  leadboard lead move --id=<lead-id> quoted
  leadboard lead move --id=<lead-id> won --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Lead ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	addOutputFlags(cmd)

	return cmd
}

type moveResult struct {
	ID      string        `json:"id"`
	From    models.Status `json:"from"`
	To      models.Status `json:"to"`
	Outcome string        `json:"outcome"`
}

func (r moveResult) GetID() string { return r.ID }

func runMove(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)

	id, _ := cmd.Flags().GetString("id")
	status, err := models.ParseStatus(args[0])
	if err != nil {
		return f.Fail(cli.ExitValidation, "INVALID_STATUS", err, statusSuggestion())
	}

	cliInstance, closeFn, err := openCLI(cmd, f)
	if err != nil {
		return err
	}
	defer closeFn()

	b := cliInstance.App.NewBoard()
	if err := b.Load(cmd.Context(), cliInstance.App.API); err != nil {
		return f.Fail(cli.ExitError, "LOAD_ERROR", err, "")
	}

	before, ok := b.Lead(id)
	if !ok {
		return failLead(f, fmt.Errorf("%w: %s", models.ErrLeadNotFound, id))
	}
	from := before.Status

	out, err := b.ChangeStatus(cmd.Context(), id, status)
	if err != nil {
		if errors.Is(err, reconcile.ErrUnknownLead) {
			return failLead(f, fmt.Errorf("%w: %s", models.ErrLeadNotFound, id))
		}
		return failLead(f, err)
	}

	if out.Kind == reconcile.OutcomeRolledBack {
		return f.Fail(cli.ExitError, "MOVE_REJECTED", out.Err,
			"The lead was left in its previous stage; try again")
	}

	res := moveResult{ID: id, From: from, To: status, Outcome: out.Kind.String()}
	if f.Quiet || f.JSON {
		return f.Success(res)
	}

	if out.Kind == reconcile.OutcomeNoop {
		fmt.Printf("Lead %s is already in %s\n", id, status.Title())
		return nil
	}
	fmt.Printf("✓ Lead %s moved from %s to %s\n", id, from.Title(), status.Title())
	return nil
}
