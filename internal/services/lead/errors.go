package lead

import "errors"

// Lead-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("lead name cannot be empty")
	ErrNameTooLong     = errors.New("lead name cannot exceed 255 characters")
	ErrInvalidLeadID   = errors.New("invalid lead ID")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidEstimate = errors.New("invalid estimate: must be >= 0")
	ErrNotesTooLong    = errors.New("lead notes cannot exceed 2000 characters")
	ErrEmptyUpdate     = errors.New("update has no fields to change")
)
