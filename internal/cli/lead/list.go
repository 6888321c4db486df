package lead

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// ListCmd returns the lead list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads grouped by pipeline stage",
		Long: `List every lead, grouped into one section per pipeline stage.

Examples:
  leadboard lead list
  leadboard lead list --status=quoted
  leadboard lead list --json
`,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only show one stage")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)

	var only models.Status
	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		st, err := models.ParseStatus(raw)
		if err != nil {
			return f.Fail(cli.ExitValidation, "INVALID_STATUS", err, statusSuggestion())
		}
		only = st
	}

	cliInstance, closeFn, err := openCLI(cmd, f)
	if err != nil {
		return err
	}
	defer closeFn()

	leads, err := cliInstance.App.LeadService.ListLeads(cmd.Context())
	if err != nil {
		return failLead(f, err)
	}

	cols, err := board.Group(leads)
	if err != nil {
		return f.Fail(cli.ExitDataErr, "INVALID_DATA", err,
			"A stored lead has a status outside the pipeline; fix or delete it")
	}

	statuses := models.Statuses()
	if only != "" {
		statuses = []models.Status{only}
	}

	if f.Quiet {
		for _, st := range statuses {
			for _, l := range cols.Column(st) {
				fmt.Println(l.ID)
			}
		}
		return nil
	}

	if f.JSON {
		grouped := make(map[models.Status][]*models.Lead, len(statuses))
		for _, st := range statuses {
			grouped[st] = cols.Column(st)
		}
		return f.Success(grouped)
	}

	fmt.Print(renderColumns(cols, statuses))
	return nil
}

func renderColumns(cols board.Columns, statuses []models.Status) string {
	heading := lipgloss.NewStyle().Bold(true)
	subtle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	for _, st := range statuses {
		leads := cols.Column(st)
		b.WriteString(heading.Render(fmt.Sprintf("%s (%d)", st.Title(), len(leads))))
		b.WriteString("\n")
		if len(leads) == 0 {
			b.WriteString(subtle.Render("  no leads"))
			b.WriteString("\n")
		}
		for _, l := range leads {
			fmt.Fprintf(&b, "  %-8s %-24s %12s  %s\n", shortID(l.ID), l.Name, l.Estimate(), l.Priority)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
