package main

import (
	"fmt"
	"strings"

	"wastelookup/internal/domain"
	"wastelookup/internal/render"
	"wastelookup/internal/search"
	"wastelookup/internal/ui/views"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	deps.warn()

	load := deps.Catalog.Load(deps.Ctx)
	if load.Failed() {
		fmt.Fprintln(deps.Stderr, views.MsgLoadFailed)
		return load.Err
	}

	svc := search.NewService(deps.Config.Debounce())
	svc.SetEventBus(deps.Bus)
	svc.SetEntries(load.Entries)
	svc.Submit(c.Query)

	if svc.ShowNoResults(false) {
		fmt.Fprintln(deps.Stdout, views.MsgNoResults)
		return nil
	}

	body := render.New()
	favs := deps.Favorites.Collection()
	for i, e := range svc.State().Matches {
		if c.Full && i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printEntry(deps, body, e, favs.Contains(e.Title), c.Full)
	}
	return nil
}

func printEntry(deps *Dependencies, body *render.Renderer, e domain.CatalogEntry, favorited bool, full bool) {
	row := views.Row{Title: e.Title, Favorited: favorited}

	heading := row.Star() + " " + e.Title
	if e.Category != "" {
		heading += " [" + e.Category + "]"
	}
	fmt.Fprintln(deps.Stdout, heading)

	if !full {
		if summary := body.Plain(e.Body); summary != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", summary)
		}
		return
	}

	text := body.Render(e.Body)
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(deps.Stdout, "    %s\n", line)
	}
}
