// Package seed holds the `leadboard seed` command.
package seed

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/cli"
	leadservice "github.com/thenoetrevino/leadboard/internal/services/lead"
)

type seedResult struct {
	Created int  `json:"created"`
	Skipped bool `json:"skipped"`
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample home-service leads",
		Long: `Load a set of sample leads spread across the pipeline.

Seeding is skipped when the database already holds leads unless --force is set.
`,
		RunE: runSeed,
	}

	cmd.Flags().Bool("force", false, "Seed even if leads already exist")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")
	f := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return f.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	ctx := cmd.Context()
	if !force {
		count, err := cliInstance.App.Repo().CountLeads(ctx)
		if err != nil {
			return f.Fail(cli.ExitError, "DATABASE_ERROR", err, "")
		}
		if count > 0 {
			return report(f, seedResult{Skipped: true},
				fmt.Sprintf("Database already holds %d leads; use --force to seed anyway", count))
		}
	}

	created, err := leadservice.Seed(ctx, cliInstance.App.LeadService, leadservice.Fixtures())
	if err != nil {
		return f.Fail(cli.ExitError, "SEED_ERROR", err, "")
	}

	return report(f, seedResult{Created: len(created)},
		fmt.Sprintf("✓ Seeded %d leads", len(created)))
}

func report(f *cli.OutputFormatter, res seedResult, human string) error {
	switch {
	case f.Quiet:
		return nil
	case f.JSON:
		return f.Success(res)
	default:
		fmt.Println(human)
		return nil
	}
}
