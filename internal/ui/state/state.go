package state

// Cursor is the selection and scroll position within one list
type Cursor struct {
	Index  int // selected row
	Offset int // first visible row
}

// Move applies a navigation direction to the cursor for a list of total
// rows of which height are visible at once. It returns true when the cursor
// changed.
func (c *Cursor) Move(direction string, total, height int) bool {
	if total == 0 {
		changed := c.Index != 0 || c.Offset != 0
		c.Index, c.Offset = 0, 0
		return changed
	}
	if height < 1 {
		height = 1
	}

	old := *c
	switch direction {
	case "up":
		c.Index--
	case "down":
		c.Index++
	case "pageup":
		c.Index -= height
	case "pagedown":
		c.Index += height
	case "home":
		c.Index = 0
	case "end":
		c.Index = total - 1
	}
	c.Clamp(total, height)
	return *c != old
}

// Clamp keeps the cursor inside the list and the selected row visible
func (c *Cursor) Clamp(total, height int) {
	if height < 1 {
		height = 1
	}
	if c.Index >= total {
		c.Index = total - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}

	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if c.Index >= c.Offset+height {
		c.Offset = c.Index - height + 1
	}
	if maxOffset := total - height; c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
}

// Reset moves the cursor back to the top
func (c *Cursor) Reset() {
	c.Index, c.Offset = 0, 0
}

// AppState contains the UI state that is not owned by a domain service
type AppState struct {
	Results   Cursor
	Favorites Cursor

	// UI state
	Width          int
	Height         int
	ResultsHeight  int // rows available to the result list
	FavoriteHeight int // rows available to the favourites list
	ShowHelp       bool
	StatusMessage  string // transient status bar message
	StatusIsError  bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ResultsHeight:  10, // Updated on first WindowSizeMsg
		FavoriteHeight: 5,
	}
}

// SetStatus shows a status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus removes the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// Layout splits the terminal height between the two lists. chrome is the
// number of lines used by everything else (header, search bar, headings,
// messages, help).
func (s *AppState) Layout(width, height, chrome int) {
	s.Width = width
	s.Height = height

	avail := height - chrome
	if avail < 4 {
		avail = 4
	}
	s.FavoriteHeight = avail / 3
	if s.FavoriteHeight < 2 {
		s.FavoriteHeight = 2
	}
	s.ResultsHeight = avail - s.FavoriteHeight
}
