package models

import (
	"fmt"
	"strings"
)

// Priority ranks how urgently a lead should be worked.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is applied to leads created without one.
const DefaultPriority = PriorityMedium

var priorityColors = map[Priority]string{
	PriorityLow:    "#22C55E",
	PriorityMedium: "#EAB308",
	PriorityHigh:   "#F97316",
	PriorityUrgent: "#EF4444",
}

// Priorities returns every priority from least to most urgent.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	_, ok := priorityColors[p]
	return ok
}

// Color returns the hex color used for the priority badge.
func (p Priority) Color() string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return "#6B7280"
}

// ParsePriority normalizes user input into a Priority.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q: must be one of low, medium, high, urgent", raw)
	}
	return p, nil
}
