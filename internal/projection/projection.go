// Package projection turns board state and the drag snapshot into a view
// model. It is pure: no data access, no mutations.
package projection

import (
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// CardView is one card slot.
type CardView struct {
	Lead *models.Lead
	// Ghost marks the dragged card left in its origin slot (drawn faded).
	Ghost bool
	// Pending marks a card whose status change has not been confirmed.
	Pending bool
	// Selected marks the keyboard cursor.
	Selected bool
}

// ColumnView is one status column.
type ColumnView struct {
	Status models.Status
	Title  string
	// Count always equals len(Cards).
	Count int
	Cards []CardView
	// DropTarget is true when the drag candidate points into this column.
	DropTarget bool
}

// Overlay is the floating duplicate that follows the pointer or focus.
type Overlay struct {
	Lead   *models.Lead
	Rect   drag.Rect
	Target *board.Location
}

// View is everything a renderer needs for one frame.
type View struct {
	Columns []ColumnView
	Overlay *Overlay
	Phase   drag.Phase
}

// Options carries presentation inputs that do not live in the board.
type Options struct {
	// Titles overrides default column headings.
	Titles map[models.Status]string
	// Pending reports unconfirmed leads. Nil means none.
	Pending func(id string) bool
	// Cursor is the keyboard selection, if any.
	Cursor *board.Location
}

// Project builds the view model.
func Project(cols board.Columns, snap drag.Snapshot, opts Options) View {
	view := View{Phase: snap.Phase}

	var dragged string
	var target *board.Location
	if snap.Active() {
		dragged = snap.Session.LeadID
		target = snap.Session.Target
	}

	for _, s := range models.Statuses() {
		leads := cols.Column(s)
		col := ColumnView{
			Status:     s,
			Title:      title(s, opts.Titles),
			Count:      len(leads),
			Cards:      make([]CardView, 0, len(leads)),
			DropTarget: target != nil && target.Status == s,
		}

		for i, l := range leads {
			card := CardView{Lead: l, Ghost: l.ID == dragged}
			if opts.Pending != nil {
				card.Pending = opts.Pending(l.ID)
			}
			if opts.Cursor != nil && opts.Cursor.Status == s && opts.Cursor.Index == i {
				card.Selected = true
			}
			if card.Ghost {
				view.Overlay = &Overlay{
					Lead:   l,
					Rect:   snap.Session.Overlay(),
					Target: target,
				}
			}
			col.Cards = append(col.Cards, card)
		}

		view.Columns = append(view.Columns, col)
	}

	return view
}

// Column returns the view of status s, or nil.
func (v View) Column(s models.Status) *ColumnView {
	for i := range v.Columns {
		if v.Columns[i].Status == s {
			return &v.Columns[i]
		}
	}
	return nil
}

func title(s models.Status, overrides map[models.Status]string) string {
	if t, ok := overrides[s]; ok && t != "" {
		return t
	}
	return s.Title()
}
