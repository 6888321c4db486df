package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/reconcile"
	leadservice "github.com/thenoetrevino/leadboard/internal/services/lead"
)

// noticeTick is how often notifications are checked for expiry.
const noticeTick = 500 * time.Millisecond

type leadsLoadedMsg struct {
	leads []*models.Lead
	err   error
}

type mutationMsg struct {
	result reconcile.Result
}

type leadCreatedMsg struct {
	lead *models.Lead
	err  error
}

type noticeTickMsg time.Time

// reload marks the board as loading and fetches in the background. The
// current cards stay on screen until the answer arrives.
func (m Model) reload() tea.Cmd {
	m.board.Reload()
	return m.fetch()
}

// fetch lists leads off the event loop.
func (m Model) fetch() tea.Cmd {
	api := m.app.API
	ctx := m.ctx
	return func() tea.Msg {
		leads, err := api.ListLeads(ctx)
		return leadsLoadedMsg{leads: leads, err: err}
	}
}

// execute sends a status change off the event loop. The board has already
// moved the card.
func (m Model) execute(req *reconcile.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	b := m.board
	ctx := m.ctx
	return func() tea.Msg {
		return mutationMsg{result: b.Execute(ctx, req)}
	}
}

func (m Model) create(req leadservice.CreateLeadRequest) tea.Cmd {
	api := m.app.API
	ctx := m.ctx
	return func() tea.Msg {
		l, err := api.CreateLead(ctx, req)
		return leadCreatedMsg{lead: l, err: err}
	}
}

// tickNotices starts the expiry ticker when there is something to expire.
func (m Model) tickNotices() tea.Cmd {
	if !m.notes.HasAny() || !m.ui.StartTick() {
		return nil
	}
	return tea.Tick(noticeTick, func(t time.Time) tea.Msg {
		return noticeTickMsg(t)
	})
}
