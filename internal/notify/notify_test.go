package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCenter_AddAndDismiss(t *testing.T) {
	c := NewCenter(time.Minute)

	first := c.Add(LevelInfo, "saved")
	second := c.Add(LevelError, "failed")
	assert.True(t, c.HasAny())
	assert.Len(t, c.All(), 2)

	assert.True(t, c.Dismiss(first))
	assert.False(t, c.Dismiss(first), "already dismissed")

	all := c.All()
	assert.Len(t, all, 1)
	assert.Equal(t, second, all[0].ID)
	assert.Equal(t, LevelError, all[0].Level)
	assert.Equal(t, "error", all[0].Level.String())
}

func TestCenter_ExpireUsesTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenter(4*time.Second, WithClock(func() time.Time { return now }))

	c.Add(LevelError, "old")
	now = now.Add(3 * time.Second)
	c.Add(LevelInfo, "new")

	now = now.Add(2 * time.Second)
	assert.Equal(t, 1, c.Expire())

	all := c.All()
	assert.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Message)
}

func TestCenter_DefaultTTLAndClear(t *testing.T) {
	c := NewCenter(0)
	assert.Equal(t, DefaultTTL, c.TTL())

	var n Notifier = c
	n.Notify(LevelWarning, "careful")
	assert.True(t, c.HasAny())

	c.Clear()
	assert.False(t, c.HasAny())
}
