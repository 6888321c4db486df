package lead

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/render"
)

// ShowCmd returns the lead show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show lead details",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Lead ID (can also be provided as positional argument)")
	cmd.Flags().Int("width", 80, "Wrap width for human output")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)

	id := leadID(cmd, args)
	if id == "" {
		return f.Fail(cli.ExitUsage, "MISSING_ID", errors.New("lead ID is required"),
			"Usage: leadboard lead show <id> or leadboard lead show --id=<id>")
	}

	cliInstance, closeFn, err := openCLI(cmd, f)
	if err != nil {
		return err
	}
	defer closeFn()

	l, err := cliInstance.App.LeadService.GetLead(cmd.Context(), id)
	if err != nil {
		return failLead(f, err)
	}

	if f.Quiet || f.JSON {
		return f.Success(l)
	}

	width, _ := cmd.Flags().GetInt("width")
	out, err := render.Lead(l, width, "")
	if err != nil {
		return f.Fail(cli.ExitError, "RENDER_ERROR", err, "")
	}
	fmt.Print(out)
	return nil
}
