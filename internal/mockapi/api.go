// Package mockapi stands in for the remote lead API. It decorates the lead
// service with artificial latency and random write failures so the board's
// optimistic and rollback paths can be exercised locally.
package mockapi

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/services/lead"
)

// ErrInjectedFailure is returned for writes picked to fail.
var ErrInjectedFailure = errors.New("mock api: injected failure")

// Options tunes the mock.
type Options struct {
	// Latency is added before every call.
	Latency time.Duration
	// Jitter adds up to this much extra random latency.
	Jitter time.Duration
	// FailureRate is the probability in [0, 1] that a write fails.
	FailureRate float64
	// Rand overrides the random source. Used by tests for determinism.
	Rand *rand.Rand
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// API wraps a lead.Service.
type API struct {
	svc  lead.Service
	opts Options

	mu  sync.Mutex
	rng *rand.Rand
}

var _ lead.Service = (*API)(nil)

// New wraps svc.
func New(svc lead.Service, opts Options) *API {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	opts.FailureRate = min(max(opts.FailureRate, 0), 1)
	return &API{svc: svc, opts: opts, rng: rng}
}

// wait sleeps for the configured latency or until ctx is done.
func (a *API) wait(ctx context.Context) error {
	d := a.opts.Latency
	if a.opts.Jitter > 0 {
		a.mu.Lock()
		d += time.Duration(a.rng.Int64N(int64(a.opts.Jitter)))
		a.mu.Unlock()
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// write waits and then decides whether the call is allowed through.
func (a *API) write(ctx context.Context, op string) error {
	if err := a.wait(ctx); err != nil {
		return err
	}
	if a.opts.FailureRate <= 0 {
		return nil
	}

	a.mu.Lock()
	fail := a.rng.Float64() < a.opts.FailureRate
	a.mu.Unlock()
	if fail {
		a.opts.Logger.Info("injecting failure", "op", op)
		return ErrInjectedFailure
	}
	return nil
}

// ============================================================================
// READS
// ============================================================================

func (a *API) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return a.svc.ListLeads(ctx)
}

func (a *API) ListLeadsByStatus(ctx context.Context) (map[models.Status][]*models.Lead, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return a.svc.ListLeadsByStatus(ctx)
}

func (a *API) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return a.svc.GetLead(ctx, id)
}

// ============================================================================
// WRITES
// ============================================================================

func (a *API) CreateLead(ctx context.Context, req lead.CreateLeadRequest) (*models.Lead, error) {
	if err := a.write(ctx, "create"); err != nil {
		return nil, err
	}
	return a.svc.CreateLead(ctx, req)
}

func (a *API) UpdateLead(ctx context.Context, req lead.UpdateLeadRequest) (*models.Lead, error) {
	if err := a.write(ctx, "update"); err != nil {
		return nil, err
	}
	return a.svc.UpdateLead(ctx, req)
}

// UpdateLeadStatus is the board's mutation endpoint.
func (a *API) UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error) {
	if err := a.write(ctx, "update_status"); err != nil {
		return nil, err
	}
	return a.svc.UpdateLeadStatus(ctx, id, status)
}

func (a *API) DeleteLead(ctx context.Context, id string) error {
	if err := a.write(ctx, "delete"); err != nil {
		return err
	}
	return a.svc.DeleteLead(ctx, id)
}
