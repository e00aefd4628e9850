package response_models

// SearchResult is one ranked hit of the semantic search. Distance is the
// rank index within the returned list, not a vector-space distance.
type SearchResult struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Summary     string  `json:"summary"`
	Distance    int     `json:"distance"`
	Similarity  float64 `json:"similarity"`
	Category    string  `json:"category,omitempty"`
	District    string  `json:"district,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	MatchReason string  `json:"matchReason,omitempty"`
}
