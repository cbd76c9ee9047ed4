package response

type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Stale       bool     `json:"stale"`
}

type RewriteBioResponse struct {
	Text      string `json:"text"`
	Rewritten bool   `json:"rewritten"`
}

type ImageResponse struct {
	URL      string           `json:"url"`
	Provider ProviderResponse `json:"provider"`
}
