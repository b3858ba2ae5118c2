package domain

// CatalogEntry is one waste-disposal guidance record from the catalog endpoint
type CatalogEntry struct {
	Title    string `json:"title"`              // display name, unique within a loaded catalog
	Body     string `json:"body"`               // HTML-escaped guidance text
	Keywords string `json:"keywords"`           // search haystack
	Category string `json:"category,omitempty"` // optional grouping from the endpoint
}

// LoadState describes the outcome of the one-off catalog load
type LoadState struct {
	Loaded  bool // true once the load finished, successfully or not
	Err     error
	Entries []CatalogEntry
}

// Failed reports whether the load finished with an error
func (s LoadState) Failed() bool {
	return s.Loaded && s.Err != nil
}

// Pending reports whether the load has not finished yet
func (s LoadState) Pending() bool {
	return !s.Loaded
}
