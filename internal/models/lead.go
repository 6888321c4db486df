package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Lead is a prospective customer moving through the sales pipeline.
// Only ID and Status matter to board mechanics; the remaining fields are
// used for display and sorting.
type Lead struct {
	ID            string    `json:"id"`
	Status        Status    `json:"status"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Source        string    `json:"source,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Priority      Priority  `json:"priority"`
	EstimateCents int64     `json:"estimate_cents"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GetID lets output formatters print the bare identifier in quiet mode.
func (l *Lead) GetID() string {
	return l.ID
}

// Clone returns a shallow copy so optimistic edits never alias
// the authoritative record.
func (l *Lead) Clone() *Lead {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// Estimate formats EstimateCents as dollars, e.g. "$1,250.00".
func (l *Lead) Estimate() string {
	return FormatCents(l.EstimateCents)
}

// FormatCents renders an amount of cents as a dollar string with
// thousands separators.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := fmt.Sprintf("%d", cents/100)
	var grouped []byte
	for i, r := range []byte(dollars) {
		if i > 0 && (len(dollars)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped, cents%100)
}

// ParseCents parses a dollar amount such as "1250", "$1,250.5" or
// "1250.99" into cents.
func ParseCents(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("invalid amount %q: at most two decimal places", raw)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return dollars*100 + cents, nil
}
