package search

// NormalizedResult is the unified shape returned regardless of origin.
// Notes carries a human-readable summary so clients can seed a new
// collection entry directly from a search hit.
type NormalizedResult struct {
	ExternalID    int64   `json:"externalId"`
	Title         string  `json:"title"`
	Platform      string  `json:"platform"`
	Year          *int    `json:"year,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
	Notes         string  `json:"notes"`
}

// Result is the orchestrator's response.
type Result struct {
	Items  []NormalizedResult
	Cached bool
}
