// Package reconcile applies lead status changes optimistically and settles
// them against the data layer's answer.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
)

// Updater is the outbound mutation. It is the only side-effecting call the
// board makes.
type Updater interface {
	UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error)
}

// Request is one issued status change. Generation orders requests per lead.
type Request struct {
	LeadID     string
	From       board.Location
	To         board.Location
	Generation uint64

	prev *models.Lead
}

// Result is the data layer's answer to a Request.
type Result struct {
	Request *Request
	Lead    *models.Lead
	Err     error
}

// OutcomeKind says what Complete did with a result.
type OutcomeKind int

const (
	OutcomeNoop OutcomeKind = iota
	OutcomeConfirmed
	OutcomeRolledBack
	OutcomeStale
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeRolledBack:
		return "rolled_back"
	case OutcomeStale:
		return "stale"
	default:
		return "noop"
	}
}

// Outcome reports the effect of a settled request. Err is a
// *MutationFailure for rollbacks and ErrStaleResult for stale results.
type Outcome struct {
	Kind   OutcomeKind
	LeadID string
	Err    error
}

// chain tracks the overlapping requests for one lead.
type chain struct {
	latest      uint64
	outstanding int
	// pending is the optimistic target of the latest request while unresolved.
	pending *board.Location

	// settled is the newest state the data layer confirmed, or the lead as it
	// was before the chain started.
	settled    *models.Lead
	settledLoc board.Location
	settledGen uint64

	// provisional is set when the newest request failed while older ones
	// were in flight, leaving the board on an unconfirmed state.
	provisional bool
}

// Reconciler owns the optimistic overlay on top of a board.Store.
type Reconciler struct {
	mu       sync.Mutex
	store    *board.Store
	updater  Updater
	notifier notify.Notifier
	logger   *slog.Logger
	seq      uint64
	chains   map[string]*chain
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithNotifier surfaces mutation failures to the user.
func WithNotifier(n notify.Notifier) Option {
	return func(r *Reconciler) {
		r.notifier = n
	}
}

// WithLogger overrides slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = l
	}
}

// New creates a Reconciler writing to store and sending requests to updater.
func New(store *board.Store, updater Updater, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:   store,
		updater: updater,
		logger:  slog.Default(),
		chains:  make(map[string]*chain),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ChangeStatus runs Begin, Execute and Complete in sequence.
func (r *Reconciler) ChangeStatus(ctx context.Context, id string, status models.Status, index int) (Outcome, error) {
	req, err := r.Begin(id, status, index)
	if err != nil {
		return Outcome{}, err
	}
	if req == nil {
		return Outcome{Kind: OutcomeNoop, LeadID: id}, nil
	}
	return r.Complete(r.Execute(ctx, req)), nil
}

// Begin moves the lead to status at index immediately and returns the
// request to send. A nil request with a nil error means the lead already
// has that status and nothing needs to happen.
func (r *Reconciler) Begin(id string, status models.Status, index int) (*Request, error) {
	if !status.Valid() {
		return nil, &models.UnknownStatusError{LeadID: id, Status: status}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.store.Lead(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLead, id)
	}
	if current.Status == status {
		return nil, nil
	}

	from, err := r.store.Move(id, board.Location{Status: status, Index: index})
	if err != nil {
		return nil, fmt.Errorf("failed to apply optimistic move: %w", err)
	}
	to, _ := r.store.Locate(id)

	r.seq++
	ch, ok := r.chains[id]
	if !ok {
		ch = &chain{settled: current, settledLoc: from}
		r.chains[id] = ch
	}
	ch.latest = r.seq
	ch.outstanding++
	ch.provisional = false
	pending := to
	ch.pending = &pending

	req := &Request{
		LeadID:     id,
		From:       from,
		To:         to,
		Generation: r.seq,
		prev:       current,
	}
	r.logger.Debug("status change issued",
		"lead", id, "from", from.Status, "to", to.Status, "generation", req.Generation)
	return req, nil
}

// Execute sends the request. It may block on the network and can run off
// the event loop; it does not touch board state.
func (r *Reconciler) Execute(ctx context.Context, req *Request) Result {
	lead, err := r.updater.UpdateLeadStatus(ctx, req.LeadID, req.To.Status)
	return Result{Request: req, Lead: lead, Err: err}
}

// Complete settles a result. Only the newest request for a lead may change
// what the board shows. Older results only feed the fallback state, which is
// restored once they have all arrived after the newest one failed.
func (r *Reconciler) Complete(res Result) Outcome {
	req := res.Request

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.chains[req.LeadID]
	if !ok || req.Generation < ch.latest || ch.pending == nil {
		if ok {
			r.absorbStale(ch, res)
			r.release(req.LeadID, ch)
			if ch.provisional && ch.outstanding == 0 {
				r.logger.Debug("last older request settled, restoring confirmed state",
					"lead", req.LeadID, "generation", ch.settledGen)
				r.restore(req.LeadID, ch.settled, ch.settledLoc)
			}
		}
		r.logger.Debug("stale result discarded",
			"lead", req.LeadID, "generation", req.Generation, "error", res.Err)
		return Outcome{Kind: OutcomeStale, LeadID: req.LeadID, Err: ErrStaleResult}
	}

	ch.pending = nil
	defer r.release(req.LeadID, ch)

	if res.Err == nil && res.Lead != nil {
		if _, onBoard := r.store.Lead(req.LeadID); onBoard {
			if err := r.store.Upsert(res.Lead); err != nil {
				r.logger.Error("authoritative lead rejected", "lead", req.LeadID, "error", err)
			}
		}
		ch.settled = res.Lead.Clone()
		ch.settledLoc, _ = r.store.Locate(req.LeadID)
		ch.settledGen = req.Generation
		ch.provisional = false
		return Outcome{Kind: OutcomeConfirmed, LeadID: req.LeadID}
	}

	err := res.Err
	if err == nil {
		err = ErrEmptyResponse
	}
	failure := &MutationFailure{
		LeadID: req.LeadID,
		From:   req.prev.Status,
		To:     req.To.Status,
		Err:    err,
	}

	// With older requests still in flight the pre-request state is the best
	// guess; otherwise fall back to the last confirmed state.
	restore, loc := req.prev, req.From
	ch.provisional = ch.outstanding > 1
	if !ch.provisional {
		restore, loc = ch.settled, ch.settledLoc
	}
	r.restore(req.LeadID, restore, loc)

	r.logger.Warn("status change rolled back",
		"lead", req.LeadID, "from", failure.From, "to", failure.To, "error", err)
	if r.notifier != nil {
		name := req.LeadID
		if restore != nil && restore.Name != "" {
			name = restore.Name
		}
		r.notifier.Notify(notify.LevelError,
			fmt.Sprintf("Couldn't move %s to %s. It was put back.", name, failure.To.Title()))
	}
	return Outcome{Kind: OutcomeRolledBack, LeadID: req.LeadID, Err: failure}
}

// absorbStale lets an older success become the fallback state when it is
// newer than what the chain knew.
func (r *Reconciler) absorbStale(ch *chain, res Result) {
	req := res.Request
	if res.Err != nil || res.Lead == nil || req.Generation <= ch.settledGen {
		return
	}
	ch.settled = res.Lead.Clone()
	ch.settledLoc = req.To
	ch.settledGen = req.Generation
}

// restore rolls a lead back unless a refresh already removed it.
func (r *Reconciler) restore(id string, lead *models.Lead, loc board.Location) {
	if _, onBoard := r.store.Lead(id); !onBoard {
		r.logger.Debug("rolled back lead no longer on board", "lead", id)
		return
	}
	if err := r.store.Restore(lead, loc); err != nil {
		r.logger.Error("rollback failed", "lead", id, "error", err)
	}
}

func (r *Reconciler) release(id string, ch *chain) {
	ch.outstanding--
	if ch.outstanding <= 0 {
		delete(r.chains, id)
	}
}

// Reapply re-applies every unresolved optimistic move. Call it after an
// authoritative refresh so in-flight cards stay where the user put them.
func (r *Reconciler) Reapply() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ch := range r.chains {
		if ch.pending == nil {
			continue
		}
		if _, err := r.store.Move(id, *ch.pending); err != nil {
			r.logger.Debug("pending lead no longer on board", "lead", id)
		}
	}
}

// Pending reports whether the lead has an unresolved status change.
func (r *Reconciler) Pending(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.chains[id]
	return ok && ch.pending != nil
}

// InFlight returns the number of issued requests without a result yet.
func (r *Reconciler) InFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ch := range r.chains {
		n += ch.outstanding
	}
	return n
}
