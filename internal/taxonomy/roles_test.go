package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesFor_KnownDomains(t *testing.T) {
	for _, domain := range []Domain{DomainData, DomainWeb, DomainCloud, DomainAI} {
		roles := RolesFor(domain)
		require.Len(t, roles, 5, "domain %s", domain)
		for _, role := range roles {
			assert.NotEmpty(t, role.Title)
			assert.NotEmpty(t, role.Description)
		}
	}
}

func TestRolesFor_UnknownDomainFallsBackToData(t *testing.T) {
	data := RolesFor(DomainData)

	assert.Equal(t, data, RolesFor(Domain("quantum")))
	assert.Equal(t, data, RolesFor(DomainUnknown))
	// Canonical domains without a catalog of their own share the data list too.
	assert.Equal(t, data, RolesFor(DomainSecurity))
	assert.Equal(t, data, RolesFor(DomainBusiness))
}

func TestRolesFor_ReturnsCopy(t *testing.T) {
	roles := RolesFor(DomainWeb)
	roles[0].Title = "mutated"

	assert.Equal(t, "Frontend Developer", RolesFor(DomainWeb)[0].Title)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(DomainData))
	assert.True(t, Known(DomainDesign))
	assert.False(t, Known(DomainUnknown))
	assert.False(t, Known(Domain("quantum")))
}

func TestSkillTokens_MapToCanonicalDomains(t *testing.T) {
	for token, domain := range SkillTokens {
		assert.True(t, Known(domain), "skill token %q maps to non-canonical domain %q", token, domain)
	}
}

func TestSynonyms_MapToCanonicalDomains(t *testing.T) {
	for _, s := range Synonyms {
		assert.True(t, Known(s.Domain), "synonym %q maps to non-canonical domain %q", s.Keyword, s.Domain)
	}
}
