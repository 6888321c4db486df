package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/leadboard/internal/models"
)

const leadColumns = `id, status, name, email, phone, address, source, notes,
	priority, estimate_cents, created_at, updated_at`

// LeadPatch holds the fields to change on a lead. Nil fields are left alone.
type LeadPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	Source        *string
	Notes         *string
	Priority      *models.Priority
	EstimateCents *int64
}

// Empty reports whether the patch changes nothing.
func (p LeadPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil &&
		p.Source == nil && p.Notes == nil && p.Priority == nil && p.EstimateCents == nil
}

// LeadRepo handles lead persistence.
type LeadRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLeadRepo wraps db.
func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(s scanner) (*models.Lead, error) {
	lead := &models.Lead{}
	var status, priority string
	err := s.Scan(
		&lead.ID, &status, &lead.Name, &lead.Email, &lead.Phone, &lead.Address,
		&lead.Source, &lead.Notes, &priority, &lead.EstimateCents,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.Status = models.Status(status)
	lead.Priority = models.Priority(priority)
	return lead, nil
}

func (r *LeadRepo) query(ctx context.Context, where string, args ...any) ([]*models.Lead, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+leadColumns+" FROM leads "+where+" ORDER BY position",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

// ============================================================================
// READS
// ============================================================================

// ListLeads returns every lead in board order.
func (r *LeadRepo) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	return r.query(ctx, "")
}

// ListLeadsByStatus returns the leads in one column.
func (r *LeadRepo) ListLeadsByStatus(ctx context.Context, status models.Status) ([]*models.Lead, error) {
	return r.query(ctx, "WHERE status = ?", string(status))
}

// GetLead returns a lead or models.ErrLeadNotFound.
func (r *LeadRepo) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	return getLead(ctx, r.db, id)
}

func getLead(ctx context.Context, q querier, id string) (*models.Lead, error) {
	row := q.QueryRowContext(ctx, "SELECT "+leadColumns+" FROM leads WHERE id = ?", id)
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lead %s: %w", id, models.ErrLeadNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead %s: %w", id, err)
	}
	return lead, nil
}

// CountLeads returns the number of stored leads.
func (r *LeadRepo) CountLeads(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}

// ============================================================================
// WRITES
// ============================================================================

// CreateLead inserts lead at the end of its column. CreatedAt and UpdatedAt
// are assigned here.
func (r *LeadRepo) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	var created *models.Lead
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		pos, err := nextPosition(ctx, tx)
		if err != nil {
			return err
		}

		now := r.now()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO leads (id, status, name, email, phone, address, source, notes,
				priority, estimate_cents, position, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			lead.ID, string(lead.Status), lead.Name, lead.Email, lead.Phone, lead.Address,
			lead.Source, lead.Notes, string(lead.Priority), lead.EstimateCents, pos, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert lead: %w", err)
		}

		created, err = getLead(ctx, tx, lead.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateLeadStatus moves a lead to the end of another column.
func (r *LeadRepo) UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error) {
	var updated *models.Lead
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		pos, err := nextPosition(ctx, tx)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE leads SET status = ?, position = ?, updated_at = ? WHERE id = ?`,
			string(status), pos, r.now(), id,
		)
		if err := affectedOne(res, err, id); err != nil {
			return err
		}

		updated, err = getLead(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateLead applies the non-nil fields of patch.
func (r *LeadRepo) UpdateLead(ctx context.Context, id string, patch LeadPatch) (*models.Lead, error) {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.Source != nil {
		add("source", *patch.Source)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Priority != nil {
		add("priority", string(*patch.Priority))
	}
	if patch.EstimateCents != nil {
		add("estimate_cents", *patch.EstimateCents)
	}
	add("updated_at", r.now())
	args = append(args, id)

	var updated *models.Lead
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE leads SET "+strings.Join(sets, ", ")+" WHERE id = ?",
			args...,
		)
		if err := affectedOne(res, err, id); err != nil {
			return err
		}

		updated, err = getLead(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteLead removes a lead.
func (r *LeadRepo) DeleteLead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM leads WHERE id = ?", id)
	return affectedOne(res, err, id)
}

func affectedOne(res sql.Result, err error, id string) error {
	if err != nil {
		return fmt.Errorf("failed to write lead %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("lead %s: %w", id, models.ErrLeadNotFound)
	}
	return nil
}
