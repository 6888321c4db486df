// Package state holds the TUI's view-only state: what the user is looking at,
// not what the pipeline contains.
package state

import "github.com/thenoetrevino/leadboard/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keys are active and what is drawn on top of the board.
type Mode int

const (
	BoardMode  Mode = iota // Navigating and dragging cards
	DetailMode             // Lead detail sheet
	FormMode               // New lead form
	HelpMode               // Full key help
)

func (m Mode) String() string {
	switch m {
	case DetailMode:
		return "detail"
	case FormMode:
		return "form"
	case HelpMode:
		return "help"
	default:
		return "board"
	}
}

// UIState manages the user interface state.
// This includes terminal dimensions, the current mode and per-column
// scroll offsets. It is shared by pointer between copies of the Model so
// board callbacks can switch modes while Update is running.
type UIState struct {
	// width is the current terminal width in cells
	width int

	// height is the current terminal height in cells
	height int

	// mode is the current interaction mode
	mode Mode

	// scrollOffsets holds the index of the first visible card per column
	scrollOffsets map[models.Status]int

	// ticking is true while a notification expiry tick is scheduled
	ticking bool
}

// NewUIState creates a UIState in board mode with no size yet.
func NewUIState() *UIState {
	return &UIState{
		mode:          BoardMode,
		scrollOffsets: make(map[models.Status]int),
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Sized reports whether a window size has been received.
func (s *UIState) Sized() bool {
	return s.width > 0 && s.height > 0
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ScrollOffset returns the first visible card index for a column.
func (s *UIState) ScrollOffset(status models.Status) int {
	return s.scrollOffsets[status]
}

// SetScrollOffset updates the first visible card index for a column.
// Negative offsets are stored as 0.
func (s *UIState) SetScrollOffset(status models.Status, offset int) {
	s.scrollOffsets[status] = max(offset, 0)
}

// ScrollOffsets returns a copy of every column's offset.
func (s *UIState) ScrollOffsets() map[models.Status]int {
	out := make(map[models.Status]int, len(s.scrollOffsets))
	for k, v := range s.scrollOffsets {
		out[k] = v
	}
	return out
}

// StartTick claims the notification ticker. It returns false when a tick is
// already scheduled.
func (s *UIState) StartTick() bool {
	if s.ticking {
		return false
	}
	s.ticking = true
	return true
}

// StopTick releases the notification ticker once a tick fires.
func (s *UIState) StopTick() {
	s.ticking = false
}
