package request_models

// AISearchRequest is the body of POST /api/ai/yellow-books/search.
// Pointer fields distinguish "absent" from zero so defaults can apply.
type AISearchRequest struct {
	Query         string   `json:"query"`
	Limit         *int     `json:"limit"`
	UseCache      *bool    `json:"useCache"`
	MinSimilarity *float64 `json:"minSimilarity"`
	CategorySlug  string   `json:"categorySlug"`
}
