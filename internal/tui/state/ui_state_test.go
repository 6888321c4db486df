package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/leadboard/internal/models"
)

// TestNewUIState_Defaults ensures a fresh state starts on the board with no size.
// Edge case: View is called before the first WindowSizeMsg.
func TestNewUIState_Defaults(t *testing.T) {
	s := NewUIState()

	assert.Equal(t, BoardMode, s.Mode())
	assert.False(t, s.Sized())
	assert.Equal(t, 0, s.ScrollOffset(models.StatusNew))
}

func TestSetSize(t *testing.T) {
	s := NewUIState()
	s.SetSize(120, 0)
	assert.False(t, s.Sized(), "zero height is not a usable size")

	s.SetSize(120, 40)
	assert.True(t, s.Sized())
	assert.Equal(t, 120, s.Width())
	assert.Equal(t, 40, s.Height())
}

// TestSetScrollOffset_Negative ensures scrolling up past the first card stays at 0.
func TestSetScrollOffset_Negative(t *testing.T) {
	s := NewUIState()
	s.SetScrollOffset(models.StatusQuoted, -3)
	assert.Equal(t, 0, s.ScrollOffset(models.StatusQuoted))

	s.SetScrollOffset(models.StatusQuoted, 4)
	assert.Equal(t, 4, s.ScrollOffset(models.StatusQuoted))
}

func TestScrollOffsets_ReturnsCopy(t *testing.T) {
	s := NewUIState()
	s.SetScrollOffset(models.StatusWon, 2)

	offsets := s.ScrollOffsets()
	offsets[models.StatusWon] = 9

	assert.Equal(t, 2, s.ScrollOffset(models.StatusWon))
}

// TestStartTick_OnlyOnce ensures a second ticker is not scheduled while one is pending.
func TestStartTick_OnlyOnce(t *testing.T) {
	s := NewUIState()

	assert.True(t, s.StartTick())
	assert.False(t, s.StartTick())

	s.StopTick()
	assert.True(t, s.StartTick())
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{BoardMode, "board"},
		{DetailMode, "detail"},
		{FormMode, "form"},
		{HelpMode, "help"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}
