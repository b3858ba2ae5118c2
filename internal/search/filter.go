// Package search filters the catalog against the user's query.
package search

import (
	"strings"

	"wastelookup/internal/domain"
)

// Filter returns, in original order, every entry whose Keywords contains
// query as a literal, case-sensitive substring. An empty query matches
// nothing: clearing the search box clears the results.
func Filter(query string, entries []domain.CatalogEntry) []domain.CatalogEntry {
	matches := []domain.CatalogEntry{}
	if query == "" {
		return matches
	}
	for _, entry := range entries {
		if strings.Contains(entry.Keywords, query) {
			matches = append(matches, entry)
		}
	}
	return matches
}
