package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/reconcile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ============================================================================
// TEST HELPERS
// ============================================================================

var errRejected = errors.New("rejected")

type fakeUpdater struct {
	mu    sync.Mutex
	calls int
	fail  error
}

func (f *fakeUpdater) UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	return &models.Lead{ID: id, Status: status, Name: "Lead " + id}, nil
}

func (f *fakeUpdater) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type listSource struct {
	leads []*models.Lead
	err   error
}

func (s listSource) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	return s.leads, s.err
}

func lead(id string, s models.Status) *models.Lead {
	return &models.Lead{ID: id, Status: s, Name: "Lead " + id}
}

func newBoard(t *testing.T, opts ...Option) (*Board, *fakeUpdater) {
	t.Helper()
	up := &fakeUpdater{}
	b := New(up, opts...)
	require.NoError(t, b.Load(context.Background(), listSource{leads: []*models.Lead{
		lead("a", models.StatusNew),
		lead("b", models.StatusNew),
		lead("c", models.StatusContacted),
	}}))
	return b, up
}

func columnIDs(b *Board, s models.Status) []string {
	var ids []string
	for _, l := range b.Columns().Column(s) {
		ids = append(ids, l.ID)
	}
	return ids
}

// ============================================================================
// KEYBOARD DRAG
// ============================================================================

func TestKeyboardDrag_StatusChangeConfirmed(t *testing.T) {
	b, up := newBoard(t)

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Nudge(drag.Right))
	require.NoError(t, b.Nudge(drag.Right))

	req, err := b.Confirm()
	require.NoError(t, err)
	require.NotNil(t, req)

	// Optimistic move is visible before the call is made
	assert.Equal(t, []string{"a"}, columnIDs(b, models.StatusQualified))
	assert.Equal(t, 0, up.callCount())
	view := b.View()
	require.Len(t, view.Column(models.StatusQualified).Cards, 1)
	assert.True(t, view.Column(models.StatusQualified).Cards[0].Pending)
	assert.Equal(t, board.Location{Status: models.StatusQualified, Index: 0}, b.Cursor(), "cursor follows the card")

	out := b.Settle(b.Execute(context.Background(), req))
	assert.Equal(t, reconcile.OutcomeConfirmed, out.Kind)
	assert.Equal(t, 1, up.callCount())
	assert.Equal(t, 0, b.InFlight())
	assert.False(t, b.View().Column(models.StatusQualified).Cards[0].Pending)
}

func TestKeyboardDrag_DropAtOriginMakesNoCall(t *testing.T) {
	b, up := newBoard(t)

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Nudge(drag.Right))
	require.NoError(t, b.Nudge(drag.Left))

	req, err := b.Confirm()
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.Equal(t, 0, up.callCount())
	assert.Equal(t, []string{"a", "b"}, columnIDs(b, models.StatusNew))
}

func TestKeyboardDrag_ReorderStaysLocal(t *testing.T) {
	b, up := newBoard(t)

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Nudge(drag.Down))

	req, err := b.Confirm()
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.Equal(t, 0, up.callCount())
	assert.Equal(t, []string{"b", "a"}, columnIDs(b, models.StatusNew))
}

func TestKeyboardDrag_CancelLeavesBoardUntouched(t *testing.T) {
	b, up := newBoard(t)

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Nudge(drag.Right))
	assert.True(t, b.Cancel())
	assert.Equal(t, drag.Idle, b.Phase())

	req, err := b.Confirm()
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.Equal(t, 0, up.callCount())
	assert.Equal(t, []string{"a", "b"}, columnIDs(b, models.StatusNew))
}

func TestKeyboardDrag_PickUpOnEmptyColumn(t *testing.T) {
	b, _ := newBoard(t)
	b.SetCursor(board.Location{Status: models.StatusWon})

	assert.ErrorIs(t, b.PickUp(), reconcile.ErrUnknownLead)
	assert.Equal(t, drag.Idle, b.Phase())
}

// ============================================================================
// FAILURE AND ROLLBACK
// ============================================================================

func TestStatusChange_FailureRollsBackAndNotifies(t *testing.T) {
	center := notify.NewCenter(time.Minute)
	b, up := newBoard(t, WithNotifier(center))
	up.fail = errRejected

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Nudge(drag.Right))
	req, err := b.Confirm()
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, []string{"b"}, columnIDs(b, models.StatusNew))

	out := b.Settle(b.Execute(context.Background(), req))
	assert.Equal(t, reconcile.OutcomeRolledBack, out.Kind)
	assert.ErrorIs(t, out.Err, errRejected)
	assert.Equal(t, []string{"a", "b"}, columnIDs(b, models.StatusNew))
	assert.Equal(t, []string{"c"}, columnIDs(b, models.StatusContacted))

	all := center.All()
	require.Len(t, all, 1)
	assert.Equal(t, notify.LevelError, all[0].Level)
	assert.Contains(t, all[0].Message, "Lead a")
}

func TestChangeStatus_AppendsToTargetColumn(t *testing.T) {
	b, up := newBoard(t)

	out, err := b.ChangeStatus(context.Background(), "a", models.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeConfirmed, out.Kind)
	assert.Equal(t, 1, up.callCount())
	assert.Equal(t, []string{"c", "a"}, columnIDs(b, models.StatusContacted))
}

// ============================================================================
// POINTER GESTURES
// ============================================================================

func TestPointer_ClickActivates(t *testing.T) {
	var activated *models.Lead
	b, up := newBoard(t, WithCallbacks(Callbacks{
		OnActivate: func(l *models.Lead) { activated = l },
	}))

	rect := drag.Rect{X: 0, Y: 0, W: 20, H: 4}
	require.NoError(t, b.PointerDown("b", drag.Point{X: 2, Y: 1}, rect))
	assert.Equal(t, drag.Pending, b.PointerMove(drag.Point{X: 3, Y: 1}, nil))

	req, err := b.PointerUp()
	require.NoError(t, err)
	assert.Nil(t, req)
	require.NotNil(t, activated)
	assert.Equal(t, "b", activated.ID)
	assert.Equal(t, 0, up.callCount())
}

func TestPointer_DragToColumn(t *testing.T) {
	b, _ := newBoard(t, WithActivationDistance(2))

	rect := drag.Rect{X: 0, Y: 2, W: 20, H: 4}
	layout := []drag.Droppable{
		{Kind: drag.ColumnSurface, Status: models.StatusNew, Count: 2, Rect: drag.Rect{X: 0, Y: 0, W: 20, H: 40}},
		{Kind: drag.ColumnSurface, Status: models.StatusLost, Count: 0, Rect: drag.Rect{X: 100, Y: 0, W: 20, H: 40}},
	}

	require.NoError(t, b.PointerDown("a", drag.Point{X: 5, Y: 3}, rect))
	assert.Equal(t, drag.Dragging, b.PointerMove(drag.Point{X: 105, Y: 3}, layout))

	req, err := b.PointerUp()
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, models.StatusNew, req.From.Status)
	assert.Equal(t, models.StatusLost, req.To.Status)
	assert.Equal(t, []string{"a"}, columnIDs(b, models.StatusLost))

	b.Settle(b.Execute(context.Background(), req))
}

func TestPointer_UnknownLead(t *testing.T) {
	b, _ := newBoard(t)
	assert.ErrorIs(t, b.PointerDown("missing", drag.Point{}, drag.Rect{}), reconcile.ErrUnknownLead)
}

// ============================================================================
// REFRESH AND FEED
// ============================================================================

func TestRefresh_CancelsDragOfRemovedLead(t *testing.T) {
	b, _ := newBoard(t)

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Refresh([]*models.Lead{lead("b", models.StatusNew)}))

	assert.Equal(t, drag.Idle, b.Phase())
	assert.Equal(t, board.Location{Status: models.StatusNew, Index: 0}, b.Cursor())
}

func TestRefresh_KeepsPendingMove(t *testing.T) {
	b, _ := newBoard(t)

	require.NoError(t, b.PickUp())
	require.NoError(t, b.Nudge(drag.Right))
	req, err := b.Confirm()
	require.NoError(t, err)
	require.NotNil(t, req)

	// Server has not seen the move yet
	require.NoError(t, b.Refresh([]*models.Lead{
		lead("a", models.StatusNew),
		lead("b", models.StatusNew),
		lead("c", models.StatusContacted),
	}))
	assert.Equal(t, []string{"a", "c"}, columnIDs(b, models.StatusContacted))

	b.Settle(b.Execute(context.Background(), req))
}

func TestLoad_States(t *testing.T) {
	t.Run("failed", func(t *testing.T) {
		b := New(&fakeUpdater{})
		assert.Equal(t, board.Loading, b.LoadState())

		err := b.Load(context.Background(), listSource{err: errRejected})
		assert.ErrorIs(t, err, errRejected)
		assert.Equal(t, board.Failed, b.LoadState())
		assert.ErrorIs(t, b.LoadErr(), errRejected)
		assert.False(t, b.Empty())
	})

	t.Run("empty", func(t *testing.T) {
		b := New(&fakeUpdater{})
		require.NoError(t, b.Load(context.Background(), listSource{}))
		assert.Equal(t, board.Ready, b.LoadState())
		assert.True(t, b.Empty())
	})

	t.Run("applied from background fetch", func(t *testing.T) {
		b := New(&fakeUpdater{})
		require.Error(t, b.Apply(nil, errRejected))
		assert.Equal(t, board.Failed, b.LoadState())

		require.NoError(t, b.Apply([]*models.Lead{lead("a", models.StatusNew)}, nil))
		assert.Equal(t, board.Ready, b.LoadState())
		assert.Equal(t, "a", b.SelectedLead().ID)
	})

	t.Run("reload keeps cards until applied", func(t *testing.T) {
		b := New(&fakeUpdater{})
		require.NoError(t, b.Apply([]*models.Lead{lead("a", models.StatusNew)}, nil))

		b.Reload()
		assert.Equal(t, board.Loading, b.LoadState())
		assert.NoError(t, b.LoadErr())
		assert.Equal(t, 1, b.Columns().Total())

		require.NoError(t, b.Apply([]*models.Lead{lead("a", models.StatusNew), lead("b", models.StatusWon)}, nil))
		assert.Equal(t, board.Ready, b.LoadState())
		assert.Equal(t, 2, b.Columns().Total())
	})

	t.Run("unknown status", func(t *testing.T) {
		b := New(&fakeUpdater{})
		err := b.Load(context.Background(), listSource{leads: []*models.Lead{lead("x", "archived")}})
		assert.True(t, models.IsUnknownStatus(err))
		assert.Equal(t, board.Failed, b.LoadState())
	})
}

// ============================================================================
// CURSOR AND CALLBACKS
// ============================================================================

func TestCursor_Moves(t *testing.T) {
	b, _ := newBoard(t)

	b.MoveCursor(drag.Down)
	assert.Equal(t, "b", b.SelectedLead().ID)
	b.MoveCursor(drag.Down)
	assert.Equal(t, "b", b.SelectedLead().ID, "clamped at column end")

	b.MoveCursor(drag.Right)
	assert.Equal(t, board.Location{Status: models.StatusContacted, Index: 0}, b.Cursor())
	assert.Equal(t, "c", b.SelectedLead().ID)

	b.MoveCursor(drag.Right)
	assert.Nil(t, b.SelectedLead())

	b.SetCursor(board.Location{Status: models.StatusNew})
	b.MoveCursor(drag.Left)
	assert.Equal(t, models.StatusNew, b.Cursor().Status)
}

func TestRequestCreate(t *testing.T) {
	var created []models.Status
	b, _ := newBoard(t, WithCallbacks(Callbacks{
		OnCreate: func(s models.Status) { created = append(created, s) },
	}))

	b.RequestCreate(models.StatusQuoted)
	b.RequestCreate("archived")
	assert.Equal(t, []models.Status{models.StatusQuoted}, created)
}
