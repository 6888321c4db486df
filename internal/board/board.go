// Package board derives the per-status column layout of the lead pipeline
// and owns the mutable state container the rest of the board writes through.
package board

import (
	"github.com/thenoetrevino/leadboard/internal/models"
)

// Location identifies a card slot: the column and the index within it.
type Location struct {
	Status models.Status
	Index  int
}

// Columns maps every pipeline status to its ordered leads.
// A Columns value built by Group always has one entry per status.
type Columns map[models.Status][]*models.Lead

// Group projects a flat, ordered lead list into columns. Order within a
// column follows input order. A lead with a status outside the enum fails
// the whole projection with *models.UnknownStatusError.
func Group(leads []*models.Lead) (Columns, error) {
	cols := make(Columns, len(models.Statuses()))
	for _, s := range models.Statuses() {
		cols[s] = []*models.Lead{}
	}

	for _, lead := range leads {
		if !lead.Status.Valid() {
			return nil, &models.UnknownStatusError{LeadID: lead.ID, Status: lead.Status}
		}
		cols[lead.Status] = append(cols[lead.Status], lead)
	}

	return cols, nil
}

// Column returns the leads in status s. Never nil for a grouped board.
func (c Columns) Column(s models.Status) []*models.Lead {
	if leads, ok := c[s]; ok {
		return leads
	}
	return []*models.Lead{}
}

// Count is always the length of the column; there is no separate counter.
func (c Columns) Count(s models.Status) int {
	return len(c[s])
}

// Total returns the number of leads across all columns.
func (c Columns) Total() int {
	total := 0
	for _, leads := range c {
		total += len(leads)
	}
	return total
}

// Locate finds the column and index of a lead.
func (c Columns) Locate(id string) (Location, bool) {
	for _, s := range models.Statuses() {
		for i, lead := range c[s] {
			if lead.ID == id {
				return Location{Status: s, Index: i}, true
			}
		}
	}
	return Location{}, false
}

// At returns the lead at loc, or nil when loc is out of range.
func (c Columns) At(loc Location) *models.Lead {
	leads := c[loc.Status]
	if loc.Index < 0 || loc.Index >= len(leads) {
		return nil
	}
	return leads[loc.Index]
}
