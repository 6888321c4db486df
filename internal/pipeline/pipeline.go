// Package pipeline is the lead board entry point. It wires the board store,
// the drag controller and the mutation reconciler together and exposes the
// gesture handlers a host UI calls.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/projection"
	"github.com/thenoetrevino/leadboard/internal/reconcile"
)

// Callbacks are notifications to the host page. Both are optional.
type Callbacks struct {
	// OnActivate fires when a card is clicked without being dragged.
	OnActivate func(lead *models.Lead)
	// OnCreate fires when a column's add action is invoked.
	OnCreate func(status models.Status)
}

// Option configures a Board.
type Option func(*Board)

// WithCallbacks sets the host callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(b *Board) {
		b.callbacks = cb
	}
}

// WithNotifier routes mutation failures to n.
func WithNotifier(n notify.Notifier) Option {
	return func(b *Board) {
		b.notifier = n
	}
}

// WithActivationDistance sets the pointer drag threshold.
func WithActivationDistance(d float64) Option {
	return func(b *Board) {
		b.dragOpts = append(b.dragOpts, drag.WithActivationDistance(d))
	}
}

// WithTitles overrides column headings.
func WithTitles(titles map[models.Status]string) Option {
	return func(b *Board) {
		b.titles = titles
	}
}

// WithLogger overrides slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		b.logger = l
	}
}

// Board is the lead pipeline board.
type Board struct {
	store      *board.Store
	feed       *board.Feed
	drag       *drag.Controller
	reconciler *reconcile.Reconciler

	callbacks Callbacks
	notifier  notify.Notifier
	titles    map[models.Status]string
	logger    *slog.Logger
	dragOpts  []drag.Option

	cursor board.Location
}

// New creates a board that sends status changes to updater.
func New(updater reconcile.Updater, opts ...Option) *Board {
	b := &Board{
		store:  board.NewStore(),
		feed:   board.NewFeed(),
		logger: slog.Default(),
		cursor: board.Location{Status: models.StatusNew},
	}
	for _, opt := range opts {
		opt(b)
	}

	b.dragOpts = append(b.dragOpts, drag.WithTransitionHook(func(from, to drag.Phase) {
		b.logger.Debug("drag transition", "from", from, "to", to)
	}))
	b.drag = drag.NewController(b.dragOpts...)

	recOpts := []reconcile.Option{reconcile.WithLogger(b.logger)}
	if b.notifier != nil {
		recOpts = append(recOpts, reconcile.WithNotifier(b.notifier))
	}
	b.reconciler = reconcile.New(b.store, updater, recOpts...)
	return b
}

// ============================================================================
// DATA FEED
// ============================================================================

// Load fetches every lead from src and refreshes the board.
func (b *Board) Load(ctx context.Context, src board.Source) error {
	return b.feed.Load(ctx, src, b.Refresh)
}

// Reload marks the feed as loading before the host fetches off the event
// loop. The board keeps its current leads until Apply.
func (b *Board) Reload() {
	b.feed.Start()
}

// Apply records a fetch the host ran off the event loop. A nil err applies
// leads like Load would.
func (b *Board) Apply(leads []*models.Lead, err error) error {
	return b.feed.Settle(leads, err, b.Refresh)
}

// Refresh applies an authoritative lead list. Unconfirmed moves are laid
// back on top, and a drag on a lead that vanished is cancelled.
func (b *Board) Refresh(leads []*models.Lead) error {
	if err := b.store.Replace(leads); err != nil {
		return err
	}
	b.reconciler.Reapply()

	if snap := b.drag.Snapshot(); snap.Session != nil {
		if _, ok := b.store.Lead(snap.Session.LeadID); !ok {
			b.drag.Forget(snap.Session.LeadID)
		}
	}
	b.clampCursor()
	return nil
}

// LoadState exposes the feed state so hosts can tell loading, failed and empty apart.
func (b *Board) LoadState() board.LoadState {
	return b.feed.State()
}

// LoadErr returns the error of the last failed load.
func (b *Board) LoadErr() error {
	return b.feed.Err()
}

// Empty is true after a successful load with no leads.
func (b *Board) Empty() bool {
	return b.feed.Empty()
}

// Columns returns the current grouping.
func (b *Board) Columns() board.Columns {
	return b.store.Snapshot()
}

// Lead returns a lead by id.
func (b *Board) Lead(id string) (*models.Lead, bool) {
	return b.store.Lead(id)
}

// Phase returns the drag controller phase.
func (b *Board) Phase() drag.Phase {
	return b.drag.Phase()
}

// View projects the board for rendering.
func (b *Board) View() projection.View {
	cursor := b.cursor
	return projection.Project(b.store.Snapshot(), b.drag.Snapshot(), projection.Options{
		Titles:  b.titles,
		Pending: b.reconciler.Pending,
		Cursor:  &cursor,
	})
}

// ============================================================================
// POINTER GESTURES
// ============================================================================

// PointerDown arms a drag on a card.
func (b *Board) PointerDown(leadID string, at drag.Point, rect drag.Rect) error {
	origin, ok := b.store.Locate(leadID)
	if !ok {
		return reconcile.ErrUnknownLead
	}
	return b.drag.PointerDown(leadID, origin, at, rect)
}

// PointerMove updates the drag with the current on-screen droppables.
func (b *Board) PointerMove(at drag.Point, layout []drag.Droppable) drag.Phase {
	return b.drag.PointerMove(at, layout)
}

// PointerUp finishes a pointer gesture. A short press activates the card.
// A cross-column drop returns the request the host must execute.
func (b *Board) PointerUp() (*reconcile.Request, error) {
	drop, clicked := b.drag.PointerUp()
	if clicked {
		b.Activate(drop.LeadID)
		return nil, nil
	}
	return b.commit(drop)
}

// ============================================================================
// KEYBOARD GESTURES
// ============================================================================

// PickUp starts a keyboard drag on the card under the cursor.
func (b *Board) PickUp() error {
	lead := b.SelectedLead()
	if lead == nil {
		return reconcile.ErrUnknownLead
	}
	return b.drag.PickUp(lead.ID, b.cursor)
}

// Nudge moves the keyboard drag candidate.
func (b *Board) Nudge(dir drag.Direction) error {
	return b.drag.Nudge(dir, b.store.Snapshot())
}

// Confirm drops the keyboard drag at its candidate slot.
func (b *Board) Confirm() (*reconcile.Request, error) {
	return b.commit(b.drag.Drop())
}

// Cancel abandons any gesture without touching the board.
func (b *Board) Cancel() bool {
	return b.drag.Cancel()
}

// ============================================================================
// MUTATIONS
// ============================================================================

func (b *Board) commit(drop drag.Drop) (*reconcile.Request, error) {
	switch drop.Kind {
	case drag.DropReorder:
		if _, err := b.store.Reorder(drop.LeadID, drop.To.Index); err != nil {
			return nil, err
		}
		b.follow(drop.LeadID)
		return nil, nil

	case drag.DropStatusChange:
		req, err := b.reconciler.Begin(drop.LeadID, drop.To.Status, drop.To.Index)
		if err != nil {
			return nil, err
		}
		b.follow(drop.LeadID)
		return req, nil

	default:
		return nil, nil
	}
}

// Execute sends a status change. Safe to call off the event loop.
func (b *Board) Execute(ctx context.Context, req *reconcile.Request) reconcile.Result {
	return b.reconciler.Execute(ctx, req)
}

// Settle applies a result produced by Execute.
func (b *Board) Settle(res reconcile.Result) reconcile.Outcome {
	out := b.reconciler.Complete(res)
	b.clampCursor()
	return out
}

// ChangeStatus moves a lead to the end of another column and waits for
// the data layer.
func (b *Board) ChangeStatus(ctx context.Context, id string, status models.Status) (reconcile.Outcome, error) {
	index := b.store.Snapshot().Count(status)
	out, err := b.reconciler.ChangeStatus(ctx, id, status, index)
	b.clampCursor()
	return out, err
}

// InFlight returns the number of unresolved status changes.
func (b *Board) InFlight() int {
	return b.reconciler.InFlight()
}

// ============================================================================
// HOST CALLBACKS
// ============================================================================

// Activate notifies the host that a card was opened.
func (b *Board) Activate(leadID string) {
	lead, ok := b.store.Lead(leadID)
	if !ok || b.callbacks.OnActivate == nil {
		return
	}
	b.callbacks.OnActivate(lead)
}

// RequestCreate notifies the host that a column's add action was used.
func (b *Board) RequestCreate(status models.Status) {
	if b.callbacks.OnCreate == nil || !status.Valid() {
		return
	}
	b.callbacks.OnCreate(status)
}
