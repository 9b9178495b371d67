package types

// RoleSuggestion is a job-title/description pair offered to the user
// within a career domain. Suggestions have no identity beyond the title.
type RoleSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
