// Package classify decides what a user message is asking for: a set of
// skills, a mention of a career domain, or plain conversation.
package classify

import (
	"strings"

	"github.com/jonathan/career-mentor/internal/taxonomy"
)

// Kind is the category of a classified message.
type Kind int

const (
	// KindConversation means the message is open-ended chat.
	KindConversation Kind = iota
	// KindSkills means the message lists skills the user has.
	KindSkills
	// KindDomainMention means the message refers to a career domain.
	KindDomainMention
)

func (k Kind) String() string {
	switch k {
	case KindSkills:
		return "skills"
	case KindDomainMention:
		return "domain"
	default:
		return "conversation"
	}
}

// Result is the outcome of classifying one message.
//
// Domains is populated only for KindSkills and is deduplicated and
// ordered by the canonical domain order. Domain is populated only for
// KindDomainMention and may be taxonomy.DomainUnknown when the message
// reads like a domain mention but no synonym resolves it.
type Result struct {
	Kind    Kind
	Domains []taxonomy.Domain
	Domain  taxonomy.Domain
}

// domainOrder fixes the order in which skill-derived domains are
// reported, so downstream role accumulation is deterministic.
var domainOrder = []taxonomy.Domain{
	taxonomy.DomainData,
	taxonomy.DomainAI,
	taxonomy.DomainWeb,
	taxonomy.DomainCloud,
	taxonomy.DomainSecurity,
	taxonomy.DomainTester,
	taxonomy.DomainBusiness,
	taxonomy.DomainDesign,
}

// Classify categorizes a raw user message.
//
// Precedence is fixed: skill tokens beat everything, greetings beat
// domain keywords, and only then is the message checked for a domain
// mention. Empty or whitespace-only input is conversation.
func Classify(text string) Result {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Result{Kind: KindConversation}
	}

	if domains := skillDomains(t); len(domains) > 0 {
		return Result{Kind: KindSkills, Domains: domains}
	}

	if isGreeting(t) {
		return Result{Kind: KindConversation}
	}

	if !mentionsDomain(t) {
		return Result{Kind: KindConversation}
	}

	return Result{Kind: KindDomainMention, Domain: resolveDomain(t)}
}

// skillDomains scans the skill-token table and collects the domains the
// matched tokens map to, deduplicated and in canonical order.
func skillDomains(t string) []taxonomy.Domain {
	found := make(map[taxonomy.Domain]bool)
	for token, domain := range taxonomy.SkillTokens {
		if strings.Contains(t, token) {
			found[domain] = true
		}
	}
	if len(found) == 0 {
		return nil
	}

	domains := make([]taxonomy.Domain, 0, len(found))
	for _, d := range domainOrder {
		if found[d] {
			domains = append(domains, d)
		}
	}
	return domains
}

func isGreeting(t string) bool {
	for _, g := range taxonomy.Greetings {
		if g == t || strings.Contains(t, g) {
			return true
		}
	}
	return false
}

// mentionsDomain reports whether the message structurally looks like a
// domain/field request. Filler words ("domain", "field", "job") are
// stripped first so they do not mask or trigger keyword hits.
func mentionsDomain(t string) bool {
	for _, w := range taxonomy.StripWords {
		t = strings.ReplaceAll(t, w, "")
	}
	t = strings.TrimSpace(t)

	for _, k := range taxonomy.DomainKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// resolveDomain maps the message onto a canonical domain through the
// ordered synonym table. Every entry is checked and the last match
// wins; the table order, not the position in the text, decides ties.
func resolveDomain(t string) taxonomy.Domain {
	found := taxonomy.DomainUnknown
	for _, s := range taxonomy.Synonyms {
		if strings.Contains(t, s.Keyword) {
			found = s.Domain
		}
	}
	return found
}
