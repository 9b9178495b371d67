// Package session owns the per-session conversation state and the
// transition rules applied to it. A session is single-user and
// in-memory; nothing here is persisted or shared across goroutines.
package session

import (
	"github.com/google/uuid"

	"github.com/jonathan/career-mentor/internal/taxonomy"
	"github.com/jonathan/career-mentor/internal/types"
)

// Phase is the coarse position of a session in its lifecycle. It is
// derived from the state record rather than stored, so it can never
// drift from the fields that define it.
type Phase string

const (
	// PhaseIdle means no domain is active and nothing is suggested.
	PhaseIdle Phase = "idle"
	// PhaseDomainActive means a domain is set or suggestions are shown.
	PhaseDomainActive Phase = "domain_active"
	// PhaseRoleSelected means a role was chosen and roadmap, resources,
	// and jobs were populated together.
	PhaseRoleSelected Phase = "role_selected"
)

// State is the single mutable record for one interactive session. It
// is created empty at session start, mutated only by Machine event
// handlers, and discarded when the session ends.
type State struct {
	ID             uuid.UUID
	History        []types.Message
	ActiveDomain   taxonomy.Domain
	DomainsSeen    []taxonomy.Domain
	SuggestedRoles []types.RoleSuggestion
	SelectedRole   string
	Roadmap        string
	StudyResources string
	Jobs           []types.Listing
}

// NewState creates an empty session state with a fresh ID.
func NewState() *State {
	return &State{ID: uuid.New()}
}

// Phase derives the lifecycle phase from the record.
func (s *State) Phase() Phase {
	if s.SelectedRole != "" {
		return PhaseRoleSelected
	}
	if s.ActiveDomain != taxonomy.DomainUnknown || len(s.SuggestedRoles) > 0 {
		return PhaseDomainActive
	}
	return PhaseIdle
}

// addDomainSeen records a domain in insertion order. The unknown label
// is never recorded and duplicates are ignored.
func (s *State) addDomainSeen(d taxonomy.Domain) {
	if d == taxonomy.DomainUnknown {
		return
	}
	for _, seen := range s.DomainsSeen {
		if seen == d {
			return
		}
	}
	s.DomainsSeen = append(s.DomainsSeen, d)
}

// tail returns the trailing n messages of the history.
func (s *State) tail(n int) []types.Message {
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
