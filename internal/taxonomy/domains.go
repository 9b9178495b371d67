// Package taxonomy holds the static career-domain vocabulary: canonical
// domain labels, keyword and skill-token tables, and the fallback role
// catalog. It is pure data plus lookups and has no external collaborators.
package taxonomy

// Domain is a canonical career field label.
type Domain string

// Canonical domains. The set is closed and not user-extensible.
const (
	DomainData     Domain = "data"
	DomainAI       Domain = "ai"
	DomainWeb      Domain = "web"
	DomainCloud    Domain = "cloud"
	DomainSecurity Domain = "security"
	DomainTester   Domain = "tester"
	DomainBusiness Domain = "business"
	DomainDesign   Domain = "design"

	// DomainUnknown is the empty label, used when a message reads like a
	// domain mention but no synonym maps it to a canonical domain.
	DomainUnknown Domain = ""
)

// Known reports whether d is one of the canonical domains.
func Known(d Domain) bool {
	switch d {
	case DomainData, DomainAI, DomainWeb, DomainCloud,
		DomainSecurity, DomainTester, DomainBusiness, DomainDesign:
		return true
	}
	return false
}
