package reconcile

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/models"
)

var (
	// ErrUnknownLead is returned by Begin for ids the board does not hold
	ErrUnknownLead = board.ErrUnknownLead

	// ErrStaleResult marks a response that arrived after a newer request for
	// the same lead was issued. It never reaches the user.
	ErrStaleResult = errors.New("stale result discarded")

	// ErrEmptyResponse covers an updater that returned neither a lead nor an error
	ErrEmptyResponse = errors.New("update returned no lead")
)

// MutationFailure is a status change the data layer rejected. The board has
// already been rolled back when a caller sees it.
type MutationFailure struct {
	LeadID string
	From   models.Status
	To     models.Status
	Err    error
}

func (e *MutationFailure) Error() string {
	return fmt.Sprintf("failed to move lead %s from %s to %s: %v", e.LeadID, e.From, e.To, e.Err)
}

func (e *MutationFailure) Unwrap() error {
	return e.Err
}
