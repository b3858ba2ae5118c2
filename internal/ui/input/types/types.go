package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode. Each mode owns keyboard focus for one
// region of the screen.
type Mode int

const (
	ModeSearch Mode = iota
	ModeResults
	ModeFavorites
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeResults:
		return "results"
	case ModeFavorites:
		return "favourites"
	default:
		return "unknown"
	}
}

// Next returns the mode that tab moves focus to
func (m Mode) Next() Mode {
	return (m + 1) % 3
}

// Prev returns the mode that shift+tab moves focus to
func (m Mode) Prev() Mode {
	return (m + 2) % 3
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling.
// Index and title refer to the list of the focused mode.
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentTitle() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
