package types

// Listing is a single job search result.
type Listing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	City        string `json:"city"`
	ApplyURL    string `json:"apply_url"`
	Description string `json:"description,omitempty"`
}
