package lead

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thenoetrevino/leadboard/internal/database"
	"github.com/thenoetrevino/leadboard/internal/models"
)

const (
	maxNameLength  = 255
	maxNotesLength = 2000
)

// Service defines all lead-related business operations
type Service interface {
	// Read operations
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	ListLeadsByStatus(ctx context.Context) (map[models.Status][]*models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)

	// Write operations
	CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error)
	UpdateLead(ctx context.Context, req UpdateLeadRequest) (*models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// CreateLeadRequest encapsulates all data needed to create a lead
type CreateLeadRequest struct {
	Name          string
	Status        models.Status // Optional: empty means StatusNew
	Email         string
	Phone         string
	Address       string
	Source        string
	Notes         string
	Priority      models.Priority // Optional: empty means DefaultPriority
	EstimateCents int64
}

// UpdateLeadRequest encapsulates all data needed to update a lead
// Fields with pointers are optional - nil means don't update
type UpdateLeadRequest struct {
	LeadID        string
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	Source        *string
	Notes         *string
	Priority      *models.Priority
	EstimateCents *int64
}

// service implements Service interface
type service struct {
	repo  database.LeadRepository
	newID func() string
}

// NewService creates a new lead service
func NewService(repo database.LeadRepository) Service {
	return &service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// ListLeads returns every lead in board order.
func (s *service) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	leads, err := s.repo.ListLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// ListLeadsByStatus returns leads keyed by status, one entry per pipeline
// stage. Records with an unknown status fail the whole call.
func (s *service) ListLeadsByStatus(ctx context.Context) (map[models.Status][]*models.Lead, error) {
	leads, err := s.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[models.Status][]*models.Lead, len(models.Statuses()))
	for _, st := range models.Statuses() {
		grouped[st] = []*models.Lead{}
	}
	for _, l := range leads {
		if !l.Status.Valid() {
			return nil, &models.UnknownStatusError{LeadID: l.ID, Status: l.Status}
		}
		grouped[l.Status] = append(grouped[l.Status], l)
	}
	return grouped, nil
}

// GetLead returns one lead.
func (s *service) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidLeadID
	}
	return s.repo.GetLead(ctx, id)
}

// CreateLead handles lead creation with validation and defaults
func (s *service) CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error) {
	if err := s.validateCreateLead(&req); err != nil {
		return nil, err
	}

	lead, err := s.repo.CreateLead(ctx, &models.Lead{
		ID:            s.newID(),
		Status:        req.Status,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Source:        strings.TrimSpace(req.Source),
		Notes:         req.Notes,
		Priority:      req.Priority,
		EstimateCents: req.EstimateCents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// UpdateLead handles partial lead updates with validation
func (s *service) UpdateLead(ctx context.Context, req UpdateLeadRequest) (*models.Lead, error) {
	if strings.TrimSpace(req.LeadID) == "" {
		return nil, ErrInvalidLeadID
	}

	patch := database.LeadPatch{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Source:        req.Source,
		Notes:         req.Notes,
		Priority:      req.Priority,
		EstimateCents: req.EstimateCents,
	}
	if patch.Empty() {
		return nil, ErrEmptyUpdate
	}
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil && len(*req.Notes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if req.EstimateCents != nil && *req.EstimateCents < 0 {
		return nil, ErrInvalidEstimate
	}

	lead, err := s.repo.UpdateLead(ctx, req.LeadID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

// UpdateLeadStatus moves a lead to another pipeline stage and returns the
// authoritative record.
func (s *service) UpdateLeadStatus(ctx context.Context, id string, status models.Status) (*models.Lead, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidLeadID
	}
	if !status.Valid() {
		return nil, &models.UnknownStatusError{LeadID: id, Status: status}
	}

	lead, err := s.repo.UpdateLeadStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}
	return lead, nil
}

// DeleteLead removes a lead.
func (s *service) DeleteLead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidLeadID
	}
	if err := s.repo.DeleteLead(ctx, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// validateCreateLead validates the request and fills in defaults.
func (s *service) validateCreateLead(req *CreateLeadRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = models.StatusNew
	}
	if !req.Status.Valid() {
		return &models.UnknownStatusError{Status: req.Status}
	}
	if req.Priority == "" {
		req.Priority = models.DefaultPriority
	}
	if !req.Priority.Valid() {
		return ErrInvalidPriority
	}
	if req.EstimateCents < 0 {
		return ErrInvalidEstimate
	}
	if len(req.Notes) > maxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
