package database

import (
	"context"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// LeadReader defines read operations for leads.
type LeadReader interface {
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	ListLeadsByStatus(ctx context.Context, status models.Status) ([]*models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	CountLeads(ctx context.Context) (int, error)
}

// LeadWriter defines write operations for leads.
type LeadWriter interface {
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	UpdateLead(ctx context.Context, id string, patch LeadPatch) (*models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// LeadRepository combines all lead operations.
type LeadRepository interface {
	LeadReader
	LeadWriter
}
