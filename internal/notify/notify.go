// Package notify holds transient, dismissible user notifications.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 4 * time.Second

// Level represents the severity of a notification.
type Level int

const (
	// LevelInfo represents informational notifications
	LevelInfo Level = iota
	// LevelWarning represents warnings
	LevelWarning
	// LevelError represents failures the user should know about
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single message with a severity level.
type Notification struct {
	ID        int
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Notifier is implemented by anything that can surface a message to the user.
type Notifier interface {
	Notify(level Level, message string)
}

// Center keeps the current notifications. It is safe for concurrent use
// because mutation results may be reported from background commands.
type Center struct {
	mu     sync.Mutex
	items  []Notification
	nextID int
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Center.
type Option func(*Center)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Center) {
		c.now = now
	}
}

// NewCenter creates an empty Center. A non-positive ttl uses DefaultTTL.
func NewCenter(ttl time.Duration, opts ...Option) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Center{
		items: []Notification{},
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a notification and returns its id.
func (c *Center) Add(level Level, message string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.items = append(c.items, Notification{
		ID:        c.nextID,
		Level:     level,
		Message:   message,
		CreatedAt: c.now(),
	})
	return c.nextID
}

// Notify implements Notifier.
func (c *Center) Notify(level Level, message string) {
	c.Add(level, message)
}

// Dismiss removes one notification. It reports whether it existed.
func (c *Center) Dismiss(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Expire drops notifications older than the TTL and returns how many went.
func (c *Center) Expire() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl)
	kept := c.items[:0]
	for _, n := range c.items {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	return removed
}

// Clear removes all notifications.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []Notification{}
}

// All returns a copy of the current notifications, oldest first.
func (c *Center) All() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// HasAny returns true if there are any notifications.
func (c *Center) HasAny() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) > 0
}

// TTL returns the configured lifetime.
func (c *Center) TTL() time.Duration {
	return c.ttl
}
