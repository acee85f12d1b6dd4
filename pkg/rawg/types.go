package rawg

// SearchResponse is the paged payload returned by the RAWG /games endpoint.
type SearchResponse struct {
	Count   int    `json:"count"`
	Results []Game `json:"results"`
}

// Game mirrors the subset of RAWG game fields the platform consumes.
type Game struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Released        string         `json:"released"`
	BackgroundImage string         `json:"background_image"`
	Rating          float64        `json:"rating"`
	Metacritic      *int           `json:"metacritic"`
	DescriptionRaw  string         `json:"description_raw"`
	Platforms       []PlatformWrap `json:"platforms"`
	Genres          []Genre        `json:"genres"`
}

// PlatformWrap is RAWG's nested platform envelope.
type PlatformWrap struct {
	Platform Platform `json:"platform"`
}

// Platform identifies one RAWG platform.
type Platform struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Genre identifies one RAWG genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
