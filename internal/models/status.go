package models

import (
	"fmt"
	"strings"
)

// Status is a pipeline stage. The set is closed and ordered; board columns
// are exactly these values in this order.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusQuoted    Status = "quoted"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
	StatusNurture   Status = "nurture"
)

var statusOrder = []Status{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusQuoted,
	StatusWon,
	StatusLost,
	StatusNurture,
}

var statusTitles = map[Status]string{
	StatusNew:       "New",
	StatusContacted: "Contacted",
	StatusQualified: "Qualified",
	StatusQuoted:    "Quoted",
	StatusWon:       "Won",
	StatusLost:      "Lost",
	StatusNurture:   "Nurture",
}

// Statuses returns every pipeline stage in board order.
// The returned slice is a copy.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Valid reports whether s is a member of the pipeline enum.
func (s Status) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

// Index returns the column position of s, or -1 for an unknown status.
func (s Status) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Title returns the default column heading for s.
func (s Status) Title() string {
	if title, ok := statusTitles[s]; ok {
		return title
	}
	return string(s)
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus normalizes user input ("  Qualified ") into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return "", fmt.Errorf("invalid status: empty")
	}
	if !s.Valid() {
		return "", &UnknownStatusError{Status: s}
	}
	return s, nil
}
