package lead

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/cli"
	"github.com/thenoetrevino/leadboard/internal/models"
	leadservice "github.com/thenoetrevino/leadboard/internal/services/lead"
)

// CreateCmd returns the lead create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new lead",
		Long: `Create a new lead with specified attributes.

Examples:
  # Simple lead (human-readable output)
  leadboard lead create --name="Maria Gonzalez"

  # Quiet mode for bash capture
  LEAD_ID=$(leadboard lead create --name="Maria Gonzalez" --quiet)

  # Full example with all options
  leadboard lead create \
    --name="Maria Gonzalez" \
    --status=contacted \
    --phone=555-0101 \
    --source=Website \
    --priority=high \
    --estimate=8500 \
    --notes="Roof leak over the garage"
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Lead name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("status", string(models.StatusNew), "Pipeline stage")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("source", "", "Where the lead came from")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Priority: low, medium, high, urgent")
	cmd.Flags().String("estimate", "", "Estimated job value in dollars, e.g. 1250.00")
	addOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	f := formatter(cmd)

	req, err := createRequest(cmd)
	if err != nil {
		return f.Fail(cli.ExitValidation, "VALIDATION_ERROR", err, "")
	}

	cliInstance, closeFn, err := openCLI(cmd, f)
	if err != nil {
		return err
	}
	defer closeFn()

	l, err := cliInstance.App.LeadService.CreateLead(cmd.Context(), req)
	if err != nil {
		return failLead(f, err)
	}

	if f.Quiet || f.JSON {
		return f.Success(l)
	}

	fmt.Printf("✓ Lead '%s' created successfully (ID: %s)\n", l.Name, l.ID)
	fmt.Printf("  Stage: %s\n", l.Status.Title())
	fmt.Printf("  Priority: %s\n", l.Priority)
	if l.EstimateCents > 0 {
		fmt.Printf("  Estimate: %s\n", l.Estimate())
	}
	return nil
}

func createRequest(cmd *cobra.Command) (leadservice.CreateLeadRequest, error) {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	status, err := models.ParseStatus(get("status"))
	if err != nil {
		return leadservice.CreateLeadRequest{}, err
	}
	priority, err := models.ParsePriority(get("priority"))
	if err != nil {
		return leadservice.CreateLeadRequest{}, err
	}

	var cents int64
	if raw := get("estimate"); raw != "" {
		if cents, err = models.ParseCents(raw); err != nil {
			return leadservice.CreateLeadRequest{}, err
		}
	}

	return leadservice.CreateLeadRequest{
		Name:          get("name"),
		Status:        status,
		Email:         get("email"),
		Phone:         get("phone"),
		Address:       get("address"),
		Source:        get("source"),
		Notes:         get("notes"),
		Priority:      priority,
		EstimateCents: cents,
	}, nil
}
