package models

import (
	"errors"
	"fmt"
)

// ErrLeadNotFound is returned when a lead id does not resolve.
var ErrLeadNotFound = errors.New("lead not found")

// UnknownStatusError reports a lead whose status is outside the pipeline
// enum. Boards reject such records instead of bucketing them.
type UnknownStatusError struct {
	LeadID string
	Status Status
}

func (e *UnknownStatusError) Error() string {
	if e.LeadID == "" {
		return fmt.Sprintf("unknown status %q", string(e.Status))
	}
	return fmt.Sprintf("lead %s has unknown status %q", e.LeadID, string(e.Status))
}

// IsUnknownStatus reports whether err wraps an UnknownStatusError.
func IsUnknownStatus(err error) bool {
	var target *UnknownStatusError
	return errors.As(err, &target)
}
