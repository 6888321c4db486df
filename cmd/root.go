package cmd

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/cli/lead"
	"github.com/thenoetrevino/leadboard/internal/cli/seed"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/database"
	"github.com/thenoetrevino/leadboard/internal/logging"
	"github.com/thenoetrevino/leadboard/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "leadboard",
	Short: "Leadboard - a terminal sales pipeline board",
	Long: `Leadboard shows home-service sales leads as a kanban pipeline.
Drag cards between stages with the mouse or the keyboard; moves are saved
optimistically and rolled back if the save fails.

Run without a subcommand to open the board.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

func init() {
	rootCmd.AddCommand(lead.LeadCmd())
	rootCmd.AddCommand(seed.SeedCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runBoard(cmd *cobra.Command, args []string) error {
	logs, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logs.Close(); err != nil {
			fmt.Printf("Error closing log file: %v\n", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}()

	a := app.New(db, app.WithConfig(cfg), app.WithLogger(slog.Default()))
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Error closing app", "error", err)
		}
	}()

	slog.Info("starting board", "database", cfg.Database.Path)
	p := tea.NewProgram(tui.New(ctx, a), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
