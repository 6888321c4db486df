package board

import "errors"

var (
	// ErrUnknownLead is returned when a write names a lead the store does not hold
	ErrUnknownLead = errors.New("lead is not on the board")

	// ErrDuplicateLead is returned when an authoritative list repeats an id
	ErrDuplicateLead = errors.New("lead appears more than once")
)
