package taxonomy

import "github.com/jonathan/career-mentor/internal/types"

// roleCatalog holds the fixed fallback role lists per domain. Domains
// without a list of their own (security, tester, business, design, and
// anything unknown) share the data list.
var roleCatalog = map[Domain][]types.RoleSuggestion{
	DomainData: {
		{Title: "Data Analyst", Description: "Turns raw data into business insights."},
		{Title: "Data Scientist", Description: "Applies ML and stats to uncover trends."},
		{Title: "Data Engineer", Description: "Builds and manages data pipelines."},
		{Title: "BI Analyst", Description: "Creates dashboards and visualization reports."},
		{Title: "ML Engineer", Description: "Develops models that make predictions."},
	},
	DomainWeb: {
		{Title: "Frontend Developer", Description: "Builds responsive and modern UIs."},
		{Title: "Backend Developer", Description: "Develops and maintains APIs."},
		{Title: "Full Stack Developer", Description: "Works across front and back end."},
		{Title: "UI/UX Designer", Description: "Designs beautiful user experiences."},
		{Title: "Web Tester", Description: "Ensures web apps work flawlessly."},
	},
	DomainCloud: {
		{Title: "Cloud Engineer", Description: "Manages cloud infrastructure."},
		{Title: "DevOps Engineer", Description: "Automates CI/CD pipelines."},
		{Title: "Cloud Architect", Description: "Designs scalable systems."},
		{Title: "Cloud Security Engineer", Description: "Secures cloud environments."},
		{Title: "SRE", Description: "Ensures system reliability and uptime."},
	},
	DomainAI: {
		{Title: "AI Engineer", Description: "Builds and deploys AI-driven systems."},
		{Title: "ML Researcher", Description: "Develops machine learning algorithms."},
		{Title: "NLP Engineer", Description: "Works with text and language data."},
		{Title: "CV Engineer", Description: "Focuses on image/video recognition."},
		{Title: "AI Product Manager", Description: "Bridges AI tech with product vision."},
	},
}

// RolesFor returns the fallback role list for a domain. Unknown domains
// deliberately return the data list rather than an error, so a role
// lookup can never come back empty. Callers receive a copy and may
// truncate or reorder freely.
func RolesFor(domain Domain) []types.RoleSuggestion {
	roles, ok := roleCatalog[domain]
	if !ok {
		roles = roleCatalog[DomainData]
	}
	out := make([]types.RoleSuggestion, len(roles))
	copy(out, roles)
	return out
}
