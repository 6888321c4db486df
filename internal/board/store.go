package board

import (
	"fmt"
	"sync"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// Store is the single owner of board state. It keeps one flat, ordered lead
// list (the backing order) and derives Columns from it on demand.
//
// Writers are limited to authoritative loads (Replace, Upsert, Remove), the
// mutation reconciler (Move, Restore) and local reorders (Reorder).
type Store struct {
	mu      sync.RWMutex
	leads   []*models.Lead
	version uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{leads: []*models.Lead{}}
}

// Replace swaps in an authoritative lead list. The list is rejected as a
// whole if any lead has an unknown status or an id repeats.
func (s *Store) Replace(leads []*models.Lead) error {
	next := make([]*models.Lead, 0, len(leads))
	seen := make(map[string]struct{}, len(leads))
	for _, lead := range leads {
		if !lead.Status.Valid() {
			return &models.UnknownStatusError{LeadID: lead.ID, Status: lead.Status}
		}
		if _, dup := seen[lead.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLead, lead.ID)
		}
		seen[lead.ID] = struct{}{}
		next = append(next, lead.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = next
	s.version++
	return nil
}

// Snapshot groups the backing order into columns. The leads are copies;
// mutating them does not affect the store.
func (s *Store) Snapshot() Columns {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copies := make([]*models.Lead, len(s.leads))
	for i, lead := range s.leads {
		copies[i] = lead.Clone()
	}
	// Every write validates status, so grouping cannot fail here.
	cols, _ := Group(copies)
	return cols
}

// Version increases on every successful write.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Len returns the number of leads on the board.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// Lead returns a copy of the lead with the given id.
func (s *Store) Lead(id string) (*models.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.leads[i].Clone(), true
}

// Locate returns the current column and index of a lead.
func (s *Store) Locate(id string) (Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locate(id)
}

// Move places the lead in to.Status at to.Index (clamped to the column
// bounds), changing its status if needed. It returns where the lead was.
func (s *Store) Move(id string, to Location) (Location, error) {
	if !to.Status.Valid() {
		return Location{}, &models.UnknownStatusError{LeadID: id, Status: to.Status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(id, to)
}

// Reorder moves a lead within its own column. Status never changes.
func (s *Store) Reorder(id string, index int) (Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.locate(id)
	if !ok {
		return Location{}, fmt.Errorf("%w: %s", ErrUnknownLead, id)
	}
	return s.move(id, Location{Status: loc.Status, Index: index})
}

func (s *Store) move(id string, to Location) (Location, error) {
	from, ok := s.locate(id)
	if !ok {
		return Location{}, fmt.Errorf("%w: %s", ErrUnknownLead, id)
	}

	lead := s.leads[s.indexOf(id)].Clone()
	s.remove(id)
	lead.Status = to.Status
	s.insert(lead, to.Index)
	s.version++
	return from, nil
}

// Restore puts lead back at loc exactly, replacing whatever version of the
// lead the store currently holds. Used to roll back optimistic moves.
func (s *Store) Restore(lead *models.Lead, loc Location) error {
	if !loc.Status.Valid() {
		return &models.UnknownStatusError{LeadID: lead.ID, Status: loc.Status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restored := lead.Clone()
	restored.Status = loc.Status
	s.remove(restored.ID)
	s.insert(restored, loc.Index)
	s.version++
	return nil
}

// Upsert replaces a lead in place with its authoritative version, or
// appends it when the store does not hold it yet.
func (s *Store) Upsert(lead *models.Lead) error {
	if !lead.Status.Valid() {
		return &models.UnknownStatusError{LeadID: lead.ID, Status: lead.Status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(lead.ID); i >= 0 {
		s.leads[i] = lead.Clone()
	} else {
		s.leads = append(s.leads, lead.Clone())
	}
	s.version++
	return nil
}

// Remove drops a lead from the board. Missing ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remove(id) {
		s.version++
	}
}

func (s *Store) indexOf(id string) int {
	for i, lead := range s.leads {
		if lead.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) locate(id string) (Location, bool) {
	counts := make(map[models.Status]int)
	for _, lead := range s.leads {
		if lead.ID == id {
			return Location{Status: lead.Status, Index: counts[lead.Status]}, true
		}
		counts[lead.Status]++
	}
	return Location{}, false
}

func (s *Store) remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.leads = append(s.leads[:i], s.leads[i+1:]...)
	return true
}

// insert places lead so that it becomes the index-th member of its column.
// Indexes past the end append after the column's last member.
func (s *Store) insert(lead *models.Lead, index int) {
	if index < 0 {
		index = 0
	}

	seen := 0
	lastOfColumn := -1
	for i, other := range s.leads {
		if other.Status != lead.Status {
			continue
		}
		if seen == index {
			s.insertAt(i, lead)
			return
		}
		seen++
		lastOfColumn = i
	}

	if lastOfColumn >= 0 {
		s.insertAt(lastOfColumn+1, lead)
		return
	}
	s.leads = append(s.leads, lead)
}

func (s *Store) insertAt(pos int, lead *models.Lead) {
	s.leads = append(s.leads, nil)
	copy(s.leads[pos+1:], s.leads[pos:])
	s.leads[pos] = lead
}
