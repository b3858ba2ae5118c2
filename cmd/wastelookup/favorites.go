package main

import (
	"errors"
	"fmt"

	"wastelookup/internal/domain"
	"wastelookup/internal/render"
)

// ErrEntryNotFound is returned when a title matches no catalog entry
var ErrEntryNotFound = errors.New("no catalog entry with that title")

// Run executes the favorites list command.
func (c *FavoritesListCmd) Run(deps *Dependencies) error {
	deps.warn()

	favs := deps.Favorites.Collection()
	if favs.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No favourites yet. Use 'wastelookup favorites toggle <title>' to add one.")
		return nil
	}

	body := render.New()
	for _, e := range favs.Entries() {
		printEntry(deps, body, e, true, false)
	}
	return nil
}

// Run executes the favorites toggle command.
func (c *FavoritesToggleCmd) Run(deps *Dependencies) error {
	deps.warn()

	entry, err := c.resolve(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	coll, err := deps.Favorites.Toggle(deps.Ctx, entry)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: could not save favourites: %v\n", err)
		return err
	}

	if coll.Contains(entry.Title) {
		fmt.Fprintf(deps.Stdout, "Added %s to favourites\n", entry.Title)
	} else {
		fmt.Fprintf(deps.Stdout, "Removed %s from favourites\n", entry.Title)
	}
	return nil
}

// resolve picks the stored favourite with the title, which needs no network,
// or else the catalog entry with that exact title
func (c *FavoritesToggleCmd) resolve(deps *Dependencies) (domain.CatalogEntry, error) {
	favs := deps.Favorites.Collection()
	if i, ok := favs.IndexOf(c.Title); ok {
		return favs.Entries()[i], nil
	}

	load := deps.Catalog.Load(deps.Ctx)
	if load.Failed() {
		return domain.CatalogEntry{}, load.Err
	}

	entry, ok := deps.Catalog.Find(c.Title)
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, c.Title)
	}
	return entry, nil
}
