package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// layout lays out the current frame.
func (m Model) layout() layout {
	return computeLayout(m.board.View(), m.ui.Width(), m.ui.Height(), m.ui.ScrollOffsets())
}

// handleMouse maps terminal mouse events onto the pointer gesture path.
func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	mouse := msg.Mouse()
	at := drag.Point{X: float64(mouse.X), Y: float64(mouse.Y)}

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || m.board.Phase() != drag.Idle {
			return nil
		}
		return m.press(at)

	case tea.MouseMotionMsg:
		if m.board.Phase() == drag.Idle {
			return nil
		}
		m.board.PointerMove(at, m.layout().Droppables())
		return nil

	case tea.MouseReleaseMsg:
		req, err := m.board.PointerUp()
		if err != nil {
			m.notes.Add(notify.LevelError, err.Error())
		}
		m.follow()
		return m.execute(req)

	case tea.MouseWheelMsg:
		m.scroll(at, mouse.Button)
	}
	return nil
}

// press arms a drag on a card or triggers a column heading's add action.
func (m Model) press(at drag.Point) tea.Cmd {
	l := m.layout()

	if card, ok := l.CardAt(at); ok {
		m.board.SetCursor(board.Location{Status: card.Status, Index: card.Index})
		if err := m.board.PointerDown(card.LeadID, at, card.Rect); err != nil {
			m.notes.Add(notify.LevelWarning, err.Error())
		}
		return nil
	}

	col, ok := l.ColumnAt(at)
	if !ok {
		return nil
	}
	if at.Y < col.Rect.Y+columnChrome {
		m.board.RequestCreate(col.Status)
		if m.ui.Mode() == state.FormMode {
			return m.modals.form.form.Init()
		}
		return nil
	}
	m.board.SetCursor(board.Location{Status: col.Status, Index: col.Count - 1})
	return nil
}

func (m Model) scroll(at drag.Point, button tea.MouseButton) {
	col, ok := m.layout().ColumnAt(at)
	if !ok {
		return
	}
	offset := m.ui.ScrollOffset(col.Status)
	switch button {
	case tea.MouseWheelUp:
		offset--
	case tea.MouseWheelDown:
		offset++
	}
	m.ui.SetScrollOffset(col.Status, clampOffset(offset, col.Count, col.Visible))
}
