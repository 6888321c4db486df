package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/reconcile"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		if m.modals.detail != nil {
			m.modals.detail.resize(msg.Width, msg.Height)
		}

	case leadsLoadedMsg:
		if err := m.board.Apply(msg.leads, msg.err); err != nil {
			m.notes.Add(notify.LevelError, fmt.Sprintf("Could not load leads: %v", err))
		}
		m.follow()

	case mutationMsg:
		m.board.Settle(msg.result)
		m.follow()

	case leadCreatedMsg:
		if msg.err != nil {
			m.notes.Add(notify.LevelError, fmt.Sprintf("Could not add lead: %v", msg.err))
		} else {
			m.notes.Add(notify.LevelInfo, fmt.Sprintf("Added %s", msg.lead.Name))
			cmd = m.reload()
		}

	case noticeTickMsg:
		m.ui.StopTick()
		m.notes.Expire()

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if m.ui.Mode() == state.BoardMode {
			cmd = m.handleMouse(msg)
		}

	default:
		if m.ui.Mode() == state.FormMode {
			cmd = m.updateForm(msg)
		}
	}

	return m, tea.Batch(cmd, m.tickNotices())
}

// handleKey dispatches key presses by mode.
func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.ui.Mode() {
	case state.FormMode:
		return m.updateForm(msg)
	case state.DetailMode:
		return m.updateDetail(msg)
	case state.HelpMode:
		m.ui.SetMode(state.BoardMode)
		return nil
	}

	if key.Matches(msg, m.keys.Quit) && m.board.Phase() == drag.Idle {
		return tea.Quit
	}

	if m.board.Phase() != drag.Idle {
		return m.handleDragKey(msg)
	}
	return m.handleBoardKey(msg)
}

// handleBoardKey handles keys with no gesture in progress.
func (m Model) handleBoardKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.board.MoveCursor(drag.Up)
	case key.Matches(msg, m.keys.Down):
		m.board.MoveCursor(drag.Down)
	case key.Matches(msg, m.keys.Left):
		m.board.MoveCursor(drag.Left)
	case key.Matches(msg, m.keys.Right):
		m.board.MoveCursor(drag.Right)

	case key.Matches(msg, m.keys.PickUp):
		if err := m.board.PickUp(); err != nil && !errors.Is(err, reconcile.ErrUnknownLead) {
			m.notes.Add(notify.LevelWarning, err.Error())
		}

	case key.Matches(msg, m.keys.Open):
		if l := m.board.SelectedLead(); l != nil {
			m.board.Activate(l.ID)
		}

	case key.Matches(msg, m.keys.Add):
		m.board.RequestCreate(m.board.Cursor().Status)
		if m.ui.Mode() == state.FormMode {
			return m.modals.form.form.Init()
		}

	case key.Matches(msg, m.keys.Refresh):
		return m.reload()

	case key.Matches(msg, m.keys.Dismiss):
		if all := m.notes.All(); len(all) > 0 {
			m.notes.Dismiss(all[len(all)-1].ID)
		}

	case key.Matches(msg, m.keys.Help):
		m.ui.SetMode(state.HelpMode)
	}

	m.follow()
	return nil
}

// handleDragKey handles keys while a card is picked up.
func (m Model) handleDragKey(msg tea.KeyPressMsg) tea.Cmd {
	var dir drag.Direction
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.board.Cancel()
		m.follow()
		return nil

	case key.Matches(msg, m.keys.PickUp):
		req, err := m.board.Confirm()
		if err != nil {
			m.notes.Add(notify.LevelError, err.Error())
		}
		m.follow()
		return m.execute(req)

	case key.Matches(msg, m.keys.Up):
		dir = drag.Up
	case key.Matches(msg, m.keys.Down):
		dir = drag.Down
	case key.Matches(msg, m.keys.Left):
		dir = drag.Left
	case key.Matches(msg, m.keys.Right):
		dir = drag.Right
	default:
		return nil
	}

	// Pointer drags ignore nudges.
	if err := m.board.Nudge(dir); err == nil {
		m.followTarget()
	}
	return nil
}

// follow scrolls the cursor column so the selection stays on screen.
func (m Model) follow() {
	cur := m.board.Cursor()
	m.reveal(cur.Status, cur.Index)
}

// followTarget scrolls to the keyboard drag candidate.
func (m Model) followTarget() {
	if ov := m.board.View().Overlay; ov != nil && ov.Target != nil {
		m.reveal(ov.Target.Status, ov.Target.Index)
	}
}

func (m Model) reveal(status models.Status, index int) {
	if m.ui.Height() == 0 {
		return
	}
	visible := visibleCards(columnHeight(m.ui.Height()))
	m.ui.SetScrollOffset(status, keepVisible(m.ui.ScrollOffset(status), index, visible))
}
