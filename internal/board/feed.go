package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// Source is the inbound data feed: every lead the board should show.
type Source interface {
	ListLeads(ctx context.Context) ([]*models.Lead, error)
}

// LoadState tracks the inbound feed separately from the board contents so
// "still loading" and "failed" never look like an empty pipeline.
type LoadState int

const (
	Loading LoadState = iota
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Feed records the outcome of the most recent load.
type Feed struct {
	mu    sync.RWMutex
	state LoadState
	err   error
	count int
}

// NewFeed starts in the Loading state.
func NewFeed() *Feed {
	return &Feed{state: Loading}
}

// Load fetches from src and hands the result to apply (usually a Store
// refresh). A fetch error or an apply error leaves the feed Failed.
func (f *Feed) Load(ctx context.Context, src Source, apply func([]*models.Lead) error) error {
	f.Start()
	leads, err := src.ListLeads(ctx)
	return f.Settle(leads, err, apply)
}

// Start marks a fetch as in progress.
func (f *Feed) Start() {
	f.mu.Lock()
	f.state = Loading
	f.err = nil
	f.mu.Unlock()
}

// Settle records a fetch that ran elsewhere, e.g. in a background command,
// and applies its leads when it succeeded.
func (f *Feed) Settle(leads []*models.Lead, fetchErr error, apply func([]*models.Lead) error) error {
	if fetchErr != nil {
		return f.fail(fmt.Errorf("failed to load leads: %w", fetchErr))
	}
	if err := apply(leads); err != nil {
		return f.fail(fmt.Errorf("failed to apply leads: %w", err))
	}

	f.mu.Lock()
	f.state = Ready
	f.err = nil
	f.count = len(leads)
	f.mu.Unlock()

	slog.Debug("lead feed loaded", "count", len(leads))
	return nil
}

func (f *Feed) fail(err error) error {
	f.mu.Lock()
	f.state = Failed
	f.err = err
	f.mu.Unlock()

	slog.Error("lead feed failed", "error", err)
	return err
}

// State returns the current load state.
func (f *Feed) State() LoadState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Err returns the error of the last failed load, or nil.
func (f *Feed) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

// Empty is true only for a successful load that returned no leads.
func (f *Feed) Empty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state == Ready && f.count == 0
}
