package taxonomy

// Greetings and small-talk tokens. A message that equals or contains one
// of these is treated as open conversation even when a domain keyword
// co-occurs ("hi, tell me about data" stays conversational).
var Greetings = []string{
	"hi", "hey", "hello", "yo", "sup",
	"good morning", "good evening",
	"thank you", "thanks",
}

// DomainKeywords are the tokens that make a message read like a
// domain/field mention at all. They gate the synonym lookup below;
// several of them ("software", "engineer", "analyst") have no synonym
// mapping of their own and resolve to DomainUnknown.
var DomainKeywords = []string{
	"data", "ai", "machine learning", "ml", "developer", "software",
	"engineer", "analyst", "cyber", "security", "cloud", "devops",
	"tester", "qa", "android", "mobile", "web", "frontend", "backend",
	"design", "ui", "ux",
}

// StripWords are literal substrings removed before domain-keyword
// scanning, so "the data field" and "data" read the same.
var StripWords = []string{"domain", "field", "job"}

// Synonym maps one keyword to its canonical domain.
type Synonym struct {
	Keyword string
	Domain  Domain
}

// Synonyms is the ordered synonym table. Order is load-bearing: when
// several keywords match the same message, the LAST matching entry
// wins. Keep new entries at the position their precedence requires.
var Synonyms = []Synonym{
	{"data", DomainData},
	{"machine learning", DomainAI},
	{"ml", DomainAI},
	{"artificial intelligence", DomainAI},
	{"ai", DomainAI},
	{"frontend", DomainWeb},
	{"backend", DomainWeb},
	{"web", DomainWeb},
	{"developer", DomainWeb},
	{"cloud", DomainCloud},
	{"aws", DomainCloud},
	{"azure", DomainCloud},
	{"devops", DomainCloud},
	{"cyber", DomainSecurity},
	{"security", DomainSecurity},
	{"tester", DomainTester},
	{"qa", DomainTester},
	{"testing", DomainTester},
	{"commerce", DomainBusiness},
	{"finance", DomainBusiness},
	{"business", DomainBusiness},
	{"marketing", DomainBusiness},
	{"sales", DomainBusiness},
	{"design", DomainDesign},
	{"ui", DomainDesign},
	{"ux", DomainDesign},
}

// SkillTokens maps a skill token found in free text to the domain it
// suggests. The original devops and backend buckets are folded into
// cloud and web respectively, so every value is a canonical domain.
var SkillTokens = map[string]Domain{
	"html":       DomainWeb,
	"css":        DomainWeb,
	"javascript": DomainWeb,
	"react":      DomainWeb,
	"angular":    DomainWeb,
	"java":       DomainWeb,
	"spring":     DomainWeb,

	"python":   DomainData,
	"sql":      DomainData,
	"pandas":   DomainData,
	"excel":    DomainData,
	"tableau":  DomainData,
	"power bi": DomainData,

	"aws":        DomainCloud,
	"azure":      DomainCloud,
	"docker":     DomainCloud,
	"kubernetes": DomainCloud,

	"testing":  DomainTester,
	"selenium": DomainTester,

	"cyber":   DomainSecurity,
	"network": DomainSecurity,

	"machine learning": DomainAI,
	"deep learning":    DomainAI,
	"nlp":              DomainAI,
}
