package input

import (
	"wastelookup/internal/domain"
	"wastelookup/internal/ui/input/types"
	"wastelookup/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Mode      types.Mode
	State     *state.AppState
	Results   []domain.CatalogEntry
	Favorites []domain.CatalogEntry
}

func (c *ModelContext) list() ([]domain.CatalogEntry, *state.Cursor) {
	switch c.Mode {
	case types.ModeResults:
		return c.Results, &c.State.Results
	case types.ModeFavorites:
		return c.Favorites, &c.State.Favorites
	default:
		return nil, nil
	}
}

// CurrentIndex returns the selected index of the focused list, -1 when
// no list is focused
func (c *ModelContext) CurrentIndex() int {
	_, cur := c.list()
	if cur == nil {
		return -1
	}
	return cur.Index
}

// TotalItems returns the number of rows in the focused list
func (c *ModelContext) TotalItems() int {
	entries, _ := c.list()
	return len(entries)
}

// CurrentTitle returns the title of the selected row, or "" when the
// focused list is empty
func (c *ModelContext) CurrentTitle() string {
	entries, cur := c.list()
	if cur == nil || cur.Index < 0 || cur.Index >= len(entries) {
		return ""
	}
	return entries[cur.Index].Title
}
