// Package favorites keeps the user's starred catalog entries.
package favorites

import "wastelookup/internal/domain"

// Collection is an ordered set of favourites keyed by title. It is
// immutable: Toggle returns a new Collection.
type Collection struct {
	entries []domain.CatalogEntry
}

// NewCollection builds a collection from entries, keeping the first
// occurrence of each title.
func NewCollection(entries []domain.CatalogEntry) Collection {
	c := Collection{entries: make([]domain.CatalogEntry, 0, len(entries))}
	for _, e := range entries {
		if _, found := c.IndexOf(e.Title); !found {
			c.entries = append(c.entries, e)
		}
	}
	return c
}

// IndexOf returns the position of title and whether it was found.
func (c Collection) IndexOf(title string) (int, bool) {
	for i, e := range c.entries {
		if e.Title == title {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether title is a favourite.
func (c Collection) Contains(title string) bool {
	_, found := c.IndexOf(title)
	return found
}

// Len returns the number of favourites.
func (c Collection) Len() int {
	return len(c.entries)
}

// Entries returns the favourites in insertion order.
func (c Collection) Entries() []domain.CatalogEntry {
	return append([]domain.CatalogEntry{}, c.entries...)
}

// Toggle removes entry if its title is present, otherwise appends it.
func (c Collection) Toggle(entry domain.CatalogEntry) Collection {
	next := make([]domain.CatalogEntry, 0, len(c.entries)+1)
	if i, found := c.IndexOf(entry.Title); found {
		next = append(next, c.entries[:i]...)
		next = append(next, c.entries[i+1:]...)
	} else {
		next = append(next, c.entries...)
		next = append(next, entry)
	}
	return Collection{entries: next}
}
