package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

const (
	colWidth  = 100.0
	cardH     = 40.0
	headerH   = 20.0
	colHeight = 400.0
)

// testLayout lays columns side by side, cards stacked below a header.
func testLayout(cols board.Columns) []Droppable {
	var layout []Droppable
	for i, s := range models.Statuses() {
		x := float64(i) * colWidth
		layout = append(layout, Droppable{
			Kind:   ColumnSurface,
			Status: s,
			Count:  cols.Count(s),
			Rect:   Rect{X: x, Y: 0, W: colWidth, H: colHeight},
		})
		for j, l := range cols.Column(s) {
			layout = append(layout, Droppable{
				Kind:   CardSurface,
				Status: s,
				Index:  j,
				LeadID: l.ID,
				Rect:   cardRect(i, j),
			})
		}
	}
	return layout
}

func cardRect(col, row int) Rect {
	return Rect{X: float64(col) * colWidth, Y: headerH + float64(row)*cardH, W: colWidth, H: cardH}
}

func testColumns(t *testing.T, leads ...*models.Lead) board.Columns {
	t.Helper()
	cols, err := board.Group(leads)
	require.NoError(t, err)
	return cols
}

func lead(id string, s models.Status) *models.Lead {
	return &models.Lead{ID: id, Status: s}
}

// ============================================================================
// POINTER GESTURES
// ============================================================================

func TestPointer_BelowActivationDistanceIsAClick(t *testing.T) {
	cols := testColumns(t, lead("1", models.StatusNew))
	c := NewController()

	require.NoError(t, c.PointerDown("1", board.Location{Status: models.StatusNew}, Point{X: 10, Y: 30}, cardRect(0, 0)))
	assert.Equal(t, Pending, c.Phase())

	assert.Equal(t, Pending, c.PointerMove(Point{X: 14, Y: 34}, testLayout(cols)))

	drop, clicked := c.PointerUp()
	assert.True(t, clicked)
	assert.Equal(t, DropNone, drop.Kind)
	assert.Equal(t, "1", drop.LeadID)
	assert.Equal(t, Idle, c.Phase())
}

func TestPointer_ActivationThreshold(t *testing.T) {
	cols := testColumns(t, lead("1", models.StatusNew))
	c := NewController()

	require.NoError(t, c.PointerDown("1", board.Location{Status: models.StatusNew}, Point{X: 0, Y: 0}, cardRect(0, 0)))
	assert.Equal(t, Dragging, c.PointerMove(Point{X: 8, Y: 0}, testLayout(cols)))
}

func TestPointer_DragAcrossColumnsIsStatusChange(t *testing.T) {
	cols := testColumns(t, lead("1", models.StatusNew))
	c := NewController()

	start := Point{X: 50, Y: 40}
	require.NoError(t, c.PointerDown("1", board.Location{Status: models.StatusNew}, start, cardRect(0, 0)))

	// Move two columns right, into the empty qualified column
	c.PointerMove(Point{X: start.X + 2*colWidth, Y: start.Y}, testLayout(cols))

	snap := c.Snapshot()
	require.True(t, snap.Active())
	require.NotNil(t, snap.Session.Target)
	assert.Equal(t, board.Location{Status: models.StatusQualified, Index: 0}, *snap.Session.Target)

	drop, clicked := c.PointerUp()
	assert.False(t, clicked)
	assert.Equal(t, DropStatusChange, drop.Kind)
	assert.Equal(t, board.Location{Status: models.StatusNew, Index: 0}, drop.From)
	assert.Equal(t, board.Location{Status: models.StatusQualified, Index: 0}, drop.To)
	assert.Equal(t, Idle, c.Phase())
}

func TestPointer_DragOverSiblingIsReorder(t *testing.T) {
	cols := testColumns(t,
		lead("a", models.StatusNew),
		lead("b", models.StatusNew),
		lead("c", models.StatusNew),
	)
	c := NewController()

	start := Point{X: 50, Y: headerH + cardH/2}
	require.NoError(t, c.PointerDown("a", board.Location{Status: models.StatusNew, Index: 0}, start, cardRect(0, 0)))
	c.PointerMove(Point{X: start.X, Y: start.Y + 2*cardH}, testLayout(cols))

	drop := c.Drop()
	assert.Equal(t, DropReorder, drop.Kind)
	assert.Equal(t, board.Location{Status: models.StatusNew, Index: 2}, drop.To)
}

func TestPointer_DropBackAtOriginIsNoop(t *testing.T) {
	cols := testColumns(t, lead("a", models.StatusNew), lead("b", models.StatusNew))
	c := NewController()

	start := Point{X: 50, Y: headerH + cardH/2}
	require.NoError(t, c.PointerDown("a", board.Location{Status: models.StatusNew}, start, cardRect(0, 0)))
	c.PointerMove(Point{X: start.X + 30, Y: start.Y}, testLayout(cols))
	c.PointerMove(start, testLayout(cols))

	drop := c.Drop()
	assert.Equal(t, DropNone, drop.Kind)
}

func TestPointer_NoDroppablesIsNoop(t *testing.T) {
	c := NewController()

	require.NoError(t, c.PointerDown("a", board.Location{Status: models.StatusNew}, Point{}, cardRect(0, 0)))
	c.PointerMove(Point{X: 500, Y: 500}, nil)

	snap := c.Snapshot()
	assert.Equal(t, Dragging, snap.Phase)
	assert.Nil(t, snap.Session.Target)

	drop := c.Drop()
	assert.Equal(t, DropNone, drop.Kind)
}

func TestPointer_CancelRestoresIdle(t *testing.T) {
	cols := testColumns(t, lead("a", models.StatusNew))
	c := NewController()

	require.NoError(t, c.PointerDown("a", board.Location{Status: models.StatusNew}, Point{}, cardRect(0, 0)))
	c.PointerMove(Point{X: 300}, testLayout(cols))

	assert.True(t, c.Cancel())
	assert.Equal(t, Idle, c.Phase())
	assert.Nil(t, c.Snapshot().Session)
	assert.False(t, c.Cancel(), "second cancel has nothing to cancel")

	drop, clicked := c.PointerUp()
	assert.False(t, clicked)
	assert.Equal(t, Drop{}, drop)
}

func TestSingleSession(t *testing.T) {
	c := NewController()
	require.NoError(t, c.PickUp("a", board.Location{Status: models.StatusNew}))

	assert.ErrorIs(t, c.PickUp("b", board.Location{Status: models.StatusNew}), ErrSessionActive)
	assert.ErrorIs(t, c.PointerDown("b", board.Location{}, Point{}, Rect{}), ErrSessionActive)
}

func TestForget(t *testing.T) {
	c := NewController()
	require.NoError(t, c.PickUp("a", board.Location{Status: models.StatusNew}))

	assert.False(t, c.Forget("other"))
	assert.True(t, c.Forget("a"))
	assert.Equal(t, Idle, c.Phase())
}

// ============================================================================
// KEYBOARD GESTURES
// ============================================================================

func TestKeyboard_NudgeAcrossColumns(t *testing.T) {
	cols := testColumns(t,
		lead("a", models.StatusNew),
		lead("b", models.StatusNew),
		lead("x", models.StatusContacted),
	)
	c := NewController()

	require.NoError(t, c.PickUp("b", board.Location{Status: models.StatusNew, Index: 1}))
	require.NoError(t, c.Nudge(Right, cols))

	// Contacted has one card, so index 1 (append) is valid
	target := c.Snapshot().Session.Target
	assert.Equal(t, board.Location{Status: models.StatusContacted, Index: 1}, *target)

	require.NoError(t, c.Nudge(Right, cols))
	target = c.Snapshot().Session.Target
	assert.Equal(t, board.Location{Status: models.StatusQualified, Index: 0}, *target, "index clamps to empty column")

	drop := c.Drop()
	assert.Equal(t, DropStatusChange, drop.Kind)
	assert.Equal(t, models.StatusQualified, drop.To.Status)
}

func TestKeyboard_NudgeClampsAtEdges(t *testing.T) {
	cols := testColumns(t, lead("a", models.StatusNew), lead("b", models.StatusNew))
	c := NewController()

	require.NoError(t, c.PickUp("a", board.Location{Status: models.StatusNew, Index: 0}))
	require.NoError(t, c.Nudge(Left, cols))
	require.NoError(t, c.Nudge(Up, cols))
	assert.Equal(t, board.Location{Status: models.StatusNew, Index: 0}, *c.Snapshot().Session.Target)

	require.NoError(t, c.Nudge(Down, cols))
	require.NoError(t, c.Nudge(Down, cols))
	assert.Equal(t, board.Location{Status: models.StatusNew, Index: 1}, *c.Snapshot().Session.Target)

	drop := c.Drop()
	assert.Equal(t, DropReorder, drop.Kind)
}

func TestKeyboard_NudgeRequiresKeyboardDrag(t *testing.T) {
	c := NewController()
	assert.ErrorIs(t, c.Nudge(Right, nil), ErrNotDragging)

	require.NoError(t, c.PointerDown("a", board.Location{}, Point{}, Rect{}))
	assert.ErrorIs(t, c.Nudge(Right, nil), ErrNotDragging)
}

func TestKeyboard_ConfirmWithoutMovingIsNoop(t *testing.T) {
	c := NewController()
	require.NoError(t, c.PickUp("a", board.Location{Status: models.StatusWon, Index: 3}))

	drop := c.Drop()
	assert.Equal(t, DropNone, drop.Kind)
	assert.Equal(t, drop.From, drop.To)
}

// ============================================================================
// TRANSITIONS
// ============================================================================

func TestTransitionHook(t *testing.T) {
	cols := testColumns(t, lead("a", models.StatusNew))

	var seen []string
	c := NewController(
		WithActivationDistance(4),
		WithTransitionHook(func(from, to Phase) {
			seen = append(seen, from.String()+"->"+to.String())
		}),
	)

	require.NoError(t, c.PointerDown("a", board.Location{Status: models.StatusNew}, Point{}, cardRect(0, 0)))
	c.PointerMove(Point{X: 5}, testLayout(cols))
	c.PointerUp()

	assert.Equal(t, []string{
		"idle->pending",
		"pending->dragging",
		"dragging->dropping",
		"dropping->idle",
	}, seen)
}
