package pipeline

import (
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// Cursor returns the keyboard selection.
func (b *Board) Cursor() board.Location {
	return b.cursor
}

// SelectedLead returns the lead under the cursor, or nil for an empty column.
func (b *Board) SelectedLead() *models.Lead {
	return b.store.Snapshot().At(b.cursor)
}

// MoveCursor moves the keyboard selection one step.
func (b *Board) MoveCursor(dir drag.Direction) {
	statuses := models.Statuses()
	switch dir {
	case drag.Left:
		if i := b.cursor.Status.Index(); i > 0 {
			b.cursor.Status = statuses[i-1]
		}
	case drag.Right:
		if i := b.cursor.Status.Index(); i < len(statuses)-1 {
			b.cursor.Status = statuses[i+1]
		}
	case drag.Up:
		b.cursor.Index--
	case drag.Down:
		b.cursor.Index++
	}
	b.clampCursor()
}

// SetCursor selects a slot directly, e.g. on a mouse click.
func (b *Board) SetCursor(loc board.Location) {
	if !loc.Status.Valid() {
		return
	}
	b.cursor = loc
	b.clampCursor()
}

func (b *Board) follow(leadID string) {
	if loc, ok := b.store.Locate(leadID); ok {
		b.cursor = loc
	}
}

func (b *Board) clampCursor() {
	n := b.store.Snapshot().Count(b.cursor.Status)
	if b.cursor.Index >= n {
		b.cursor.Index = n - 1
	}
	if b.cursor.Index < 0 {
		b.cursor.Index = 0
	}
}
