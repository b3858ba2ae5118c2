package search

import "wastelookup/internal/domain"

// State is the transient search state owned by the Service.
type State struct {
	Query    string
	Matches  []domain.CatalogEntry
	Searched bool // true once any search has been attempted
}
