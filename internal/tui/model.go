// Package tui is the interactive pipeline board.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/leadboard/internal/app"
	"github.com/thenoetrevino/leadboard/internal/config"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/pipeline"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// modals holds the open detail sheet or create form. Like state.UIState it
// is shared between Model copies.
type modals struct {
	detail *detailView
	form   *createForm
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config
	board  *pipeline.Board
	notes  *notify.Center

	keys   keyMap
	styles styles
	help   help.Model

	ui     *state.UIState
	modals *modals
}

// New builds the board model. Leads are fetched by Init.
func New(ctx context.Context, a *app.App) Model {
	cfg := a.Config()
	ui := state.NewUIState()
	open := &modals{}
	st := newStyles(cfg.ColorScheme)

	m := Model{
		ctx:    ctx,
		app:    a,
		config: cfg,
		notes:  a.Notifications,
		keys:   newKeyMap(cfg.KeyMappings),
		styles: st,
		help:   help.New(),
		ui:     ui,
		modals: open,
	}

	m.board = a.NewBoard(pipeline.WithCallbacks(pipeline.Callbacks{
		OnActivate: func(l *models.Lead) {
			open.detail = newDetailView(l, ui.Width(), ui.Height())
			ui.SetMode(state.DetailMode)
		},
		OnCreate: func(s models.Status) {
			open.form = newCreateForm(s, cfg.ColorScheme)
			ui.SetMode(state.FormMode)
		},
	}))
	return m
}

// Init fetches the leads.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// Board exposes the pipeline board, mainly for tests.
func (m Model) Board() *pipeline.Board {
	return m.board
}
