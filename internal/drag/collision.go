package drag

import (
	"math"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// SurfaceKind tells a column container apart from a card.
type SurfaceKind int

const (
	ColumnSurface SurfaceKind = iota
	CardSurface
)

// Droppable is one surface the renderer reports as a valid drop area.
type Droppable struct {
	Kind   SurfaceKind
	Status models.Status
	// Index is the card's position in its column. Unused for columns.
	Index int
	// LeadID is set for card surfaces.
	LeadID string
	// Count is the number of cards in the column. Used for column surfaces.
	Count int
	Rect  Rect
}

// ClosestCorners picks the droppable whose four corners are nearest, summed
// pairwise, to the corners of the dragged rect. Cards win ties against their
// column so a drop lands at a concrete slot. ok is false when layout is empty.
func ClosestCorners(active Rect, layout []Droppable) (Droppable, bool) {
	var (
		best      Droppable
		bestScore = math.Inf(1)
		found     bool
	)

	ac := active.Corners()
	for _, d := range layout {
		dc := d.Rect.Corners()
		score := 0.0
		for i := range ac {
			score += ac[i].Distance(dc[i])
		}

		better := score < bestScore ||
			(score == bestScore && d.Kind == CardSurface && best.Kind == ColumnSurface)
		if !better {
			continue
		}
		best, bestScore, found = d, score, true
	}

	return best, found
}

// resolve turns a hit surface into an insertion slot for a card that started
// at origin. Column surfaces append; dropping onto the origin column's own
// container means "move to the end" of a column that still contains the card.
func resolve(hit Droppable, origin board.Location) board.Location {
	if hit.Kind == CardSurface {
		return board.Location{Status: hit.Status, Index: hit.Index}
	}

	idx := hit.Count
	if hit.Status == origin.Status && idx > 0 {
		idx--
	}
	return board.Location{Status: hit.Status, Index: idx}
}
