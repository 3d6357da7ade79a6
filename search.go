package civic

// SearchResult a named location with real or synthesized coordinates
type SearchResult struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	PlaceID     string  `json:"place_id"`
}
