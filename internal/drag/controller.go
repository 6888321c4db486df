// Package drag implements the gesture state machine for moving a card on the
// lead board. It never touches board state; it only reports what a drop means.
package drag

import (
	"errors"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/models"
)

// DefaultActivationDistance is how far a pointer must travel after a press
// before the press becomes a drag.
const DefaultActivationDistance = 8.0

var (
	// ErrSessionActive is returned when a gesture starts while another is in progress
	ErrSessionActive = errors.New("a drag session is already active")

	// ErrNotDragging is returned by keyboard moves outside a keyboard drag
	ErrNotDragging = errors.New("no keyboard drag in progress")
)

// Phase is the controller state.
type Phase int

const (
	Idle Phase = iota
	// Pending is a pointer press that has not yet crossed the activation distance.
	Pending
	Dragging
	Dropping
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Dragging:
		return "dragging"
	case Dropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// Input identifies what started the gesture.
type Input int

const (
	Pointer Input = iota
	Keyboard
)

// Direction is a keyboard nudge.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Session is the in-flight gesture.
type Session struct {
	LeadID string
	Origin board.Location
	// Target is the candidate destination, nil when nothing is in range.
	Target  *board.Location
	Input   Input
	Start   Point
	Current Point
	// Rect is the dragged card's rectangle at press time.
	Rect Rect
}

// Overlay returns where the floating card is drawn: the press rect shifted
// by the pointer delta.
func (s *Session) Overlay() Rect {
	return s.Rect.Translate(s.Current.X-s.Start.X, s.Current.Y-s.Start.Y)
}

func (s *Session) clone() *Session {
	c := *s
	if s.Target != nil {
		t := *s.Target
		c.Target = &t
	}
	return &c
}

// Snapshot is an immutable copy of the controller for renderers.
type Snapshot struct {
	Phase   Phase
	Session *Session
}

// Active reports whether a card is visibly being dragged.
func (s Snapshot) Active() bool {
	return s.Phase == Dragging && s.Session != nil
}

// DropKind classifies a completed gesture.
type DropKind int

const (
	// DropNone covers no target, a drop back onto the origin slot, and cancels.
	DropNone DropKind = iota
	DropReorder
	DropStatusChange
)

func (k DropKind) String() string {
	switch k {
	case DropReorder:
		return "reorder"
	case DropStatusChange:
		return "status_change"
	default:
		return "none"
	}
}

// Drop is the result of releasing a drag.
type Drop struct {
	Kind   DropKind
	LeadID string
	From   board.Location
	To     board.Location
}

// Option configures a Controller.
type Option func(*Controller)

// WithActivationDistance overrides DefaultActivationDistance.
func WithActivationDistance(d float64) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.activation = d
		}
	}
}

// WithTransitionHook registers fn to observe every phase change.
func WithTransitionHook(fn func(from, to Phase)) Option {
	return func(c *Controller) {
		c.onTransition = fn
	}
}

// Controller tracks a single drag gesture. It is driven from one event loop
// and is not safe for concurrent use.
type Controller struct {
	activation   float64
	phase        Phase
	session      *Session
	onTransition func(from, to Phase)
}

// NewController creates an idle controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{activation: DefaultActivationDistance}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the current state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Snapshot returns a copy safe to hand to the render layer.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{Phase: c.phase}
	if c.session != nil {
		snap.Session = c.session.clone()
	}
	return snap
}

// PointerDown arms a pointer gesture on a card. Nothing is dragged until
// the pointer moves past the activation distance.
func (c *Controller) PointerDown(leadID string, origin board.Location, at Point, rect Rect) error {
	if c.phase != Idle {
		return ErrSessionActive
	}
	c.session = &Session{
		LeadID:  leadID,
		Origin:  origin,
		Input:   Pointer,
		Start:   at,
		Current: at,
		Rect:    rect,
	}
	c.transition(Pending)
	return nil
}

// PointerMove feeds a pointer position. layout lists every droppable
// surface currently on screen.
func (c *Controller) PointerMove(at Point, layout []Droppable) Phase {
	if c.session == nil || c.session.Input != Pointer {
		return c.phase
	}
	c.session.Current = at

	if c.phase == Pending {
		if at.Distance(c.session.Start) < c.activation {
			return c.phase
		}
		c.transition(Dragging)
	}

	if c.phase == Dragging {
		c.retarget(layout)
	}
	return c.phase
}

// PointerUp releases the pointer. A press that never became a drag is a
// click, reported with clicked=true and a DropNone result.
func (c *Controller) PointerUp() (drop Drop, clicked bool) {
	switch c.phase {
	case Pending:
		leadID := c.session.LeadID
		c.reset()
		return Drop{Kind: DropNone, LeadID: leadID}, true
	case Dragging:
		return c.Drop(), false
	default:
		return Drop{}, false
	}
}

// PickUp starts a keyboard drag; the candidate target begins at the origin.
func (c *Controller) PickUp(leadID string, origin board.Location) error {
	if c.phase != Idle {
		return ErrSessionActive
	}
	target := origin
	c.session = &Session{
		LeadID: leadID,
		Origin: origin,
		Target: &target,
		Input:  Keyboard,
	}
	c.transition(Dragging)
	return nil
}

// Nudge moves the keyboard candidate one step. Left and right change column
// and keep the row where possible; up and down move within the column.
func (c *Controller) Nudge(dir Direction, cols board.Columns) error {
	if c.phase != Dragging || c.session == nil || c.session.Input != Keyboard {
		return ErrNotDragging
	}

	target := *c.session.Target
	statuses := models.Statuses()

	switch dir {
	case Left, Right:
		i := target.Status.Index()
		if dir == Left {
			i--
		} else {
			i++
		}
		if i < 0 || i >= len(statuses) {
			return nil
		}
		target.Status = statuses[i]
	case Up:
		target.Index--
	case Down:
		target.Index++
	}

	target.Index = clamp(target.Index, 0, c.maxIndex(target.Status, cols))
	c.session.Target = &target
	return nil
}

// maxIndex is the last valid insertion slot in status for the dragged card.
func (c *Controller) maxIndex(status models.Status, cols board.Columns) int {
	n := cols.Count(status)
	if status == c.session.Origin.Status {
		return max(n-1, 0)
	}
	return n
}

// Drop completes the gesture and classifies it.
func (c *Controller) Drop() Drop {
	if c.phase != Dragging || c.session == nil {
		return Drop{}
	}
	c.transition(Dropping)

	s := c.session
	drop := Drop{Kind: DropNone, LeadID: s.LeadID, From: s.Origin, To: s.Origin}
	if s.Target != nil {
		drop.To = *s.Target
		switch {
		case s.Target.Status != s.Origin.Status:
			drop.Kind = DropStatusChange
		case s.Target.Index != s.Origin.Index:
			drop.Kind = DropReorder
		}
	}

	c.reset()
	return drop
}

// Cancel abandons any gesture. It reports whether one was in progress.
func (c *Controller) Cancel() bool {
	if c.phase == Idle {
		return false
	}
	c.reset()
	return true
}

// Forget cancels the gesture if it is dragging leadID, e.g. because the
// card disappeared after a refresh.
func (c *Controller) Forget(leadID string) bool {
	if c.session == nil || c.session.LeadID != leadID {
		return false
	}
	return c.Cancel()
}

func (c *Controller) retarget(layout []Droppable) {
	hit, ok := ClosestCorners(c.session.Overlay(), layout)
	if !ok {
		c.session.Target = nil
		return
	}
	target := resolve(hit, c.session.Origin)
	c.session.Target = &target
}

func (c *Controller) reset() {
	c.session = nil
	c.transition(Idle)
}

func (c *Controller) transition(to Phase) {
	from := c.phase
	c.phase = to
	if c.onTransition != nil && from != to {
		c.onTransition(from, to)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
