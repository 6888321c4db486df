package tui

import (
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/projection"
)

// Board geometry in terminal cells. Rendering and hit testing both read
// from the same layout so a card is dropped where it was drawn.
const (
	headerHeight   = 2
	footerHeight   = 1
	columnChrome   = 3 // top border, heading, rule
	cardHeight     = 4 // border, name, meta, border
	minColumnWidth = 18
)

type columnSlot struct {
	Status models.Status
	Rect   drag.Rect
	Count  int
	// First is the index of the first visible card.
	First int
	// Visible is how many cards fit.
	Visible int
}

// AppendSlot is the empty slot below the last visible card. It stands in
// for the column container when matching drop targets.
func (c columnSlot) AppendSlot() drag.Rect {
	n := min(c.Count-c.First, c.Visible)
	return drag.Rect{
		X: c.Rect.X + 1,
		Y: c.Rect.Y + columnChrome + float64(max(n, 0)*cardHeight),
		W: c.Rect.W - 2,
		H: cardHeight,
	}
}

type cardSlot struct {
	LeadID string
	Status models.Status
	Index  int
	Rect   drag.Rect
}

type layout struct {
	ColumnWidth int
	Columns     []columnSlot
	Cards       []cardSlot
}

// columnWidth splits the terminal evenly, never below minColumnWidth.
func columnWidth(width, columns int) int {
	if columns == 0 {
		return minColumnWidth
	}
	return max(width/columns, minColumnWidth)
}

// columnHeight is the height of a column on a terminal of the given height.
func columnHeight(height int) int {
	return max(height-headerHeight-footerHeight, columnChrome+cardHeight+2)
}

// visibleCards is how many cards fit in a column of the given height. The
// bottom border and the overflow line are reserved.
func visibleCards(height int) int {
	return max((height-columnChrome-2)/cardHeight, 1)
}

func computeLayout(view projection.View, width, height int, offsets map[models.Status]int) layout {
	colW := columnWidth(width, len(view.Columns))
	colH := columnHeight(height)
	visible := visibleCards(colH)

	l := layout{ColumnWidth: colW}
	for i, col := range view.Columns {
		first := clampOffset(offsets[col.Status], col.Count, visible)
		slot := columnSlot{
			Status:  col.Status,
			Rect:    drag.Rect{X: float64(i * colW), Y: headerHeight, W: float64(colW), H: float64(colH)},
			Count:   col.Count,
			First:   first,
			Visible: visible,
		}
		l.Columns = append(l.Columns, slot)

		for idx := first; idx < col.Count && idx < first+visible; idx++ {
			l.Cards = append(l.Cards, cardSlot{
				LeadID: col.Cards[idx].Lead.ID,
				Status: col.Status,
				Index:  idx,
				Rect: drag.Rect{
					X: slot.Rect.X + 1,
					Y: slot.Rect.Y + columnChrome + float64((idx-first)*cardHeight),
					W: float64(colW - 2),
					H: cardHeight,
				},
			})
		}
	}
	return l
}

// Droppables lists every drop surface on screen for the drag controller.
func (l layout) Droppables() []drag.Droppable {
	out := make([]drag.Droppable, 0, len(l.Columns)+len(l.Cards))
	for _, c := range l.Columns {
		out = append(out, drag.Droppable{
			Kind:   drag.ColumnSurface,
			Status: c.Status,
			Count:  c.Count,
			Rect:   c.AppendSlot(),
		})
	}
	for _, c := range l.Cards {
		out = append(out, drag.Droppable{
			Kind:   drag.CardSurface,
			Status: c.Status,
			Index:  c.Index,
			LeadID: c.LeadID,
			Rect:   c.Rect,
		})
	}
	return out
}

// CardAt returns the card drawn under p.
func (l layout) CardAt(p drag.Point) (cardSlot, bool) {
	for _, c := range l.Cards {
		if inside(c.Rect, p) {
			return c, true
		}
	}
	return cardSlot{}, false
}

// ColumnAt returns the column drawn under p.
func (l layout) ColumnAt(p drag.Point) (columnSlot, bool) {
	for _, c := range l.Columns {
		if inside(c.Rect, p) {
			return c, true
		}
	}
	return columnSlot{}, false
}

// inside treats a rect as the half-open cell range it covers.
func inside(r drag.Rect, p drag.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func clampOffset(offset, count, visible int) int {
	offset = min(offset, count-visible)
	return max(offset, 0)
}

// keepVisible returns the offset that keeps index visible.
func keepVisible(offset, index, visible int) int {
	if index < offset {
		return index
	}
	if index >= offset+visible {
		return index - visible + 1
	}
	return offset
}
