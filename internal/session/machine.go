package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/career-mentor/internal/classify"
	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/prompts"
	"github.com/jonathan/career-mentor/internal/taxonomy"
	"github.com/jonathan/career-mentor/internal/types"
)

const (
	// historyWindow bounds how much history is replayed to the
	// completion collaborator. The stored history stays unbounded.
	historyWindow = 8

	// rolesPerSkillDomain is how many suggestions each skill-derived
	// domain contributes.
	rolesPerSkillDomain = 3

	conversationMaxTokens = 600
	roadmapMaxTokens      = 1000
	resourcesMaxTokens    = 400
	defaultTemperature    = 0.25
)

// User-visible reply strings. The error-channel strings are part of
// the observable contract: collaborator failures surface as ordinary
// assistant messages, never as session failures.
const (
	msgSkillsAck      = "Nice skillset! 😎 Based on what you mentioned, here are some domains you could explore 👇"
	msgDomainSwitch   = "✅ Got it! Switching gears to **%s** — here are some top roles you can explore 👇"
	msgUnknownDomain  = "Sure! Let’s explore that field and its opportunities."
	warnMissingAPIKey = "⚠️ AI API key missing."
	errReplyFormat    = "⚠️ AI error: %v"
)

// Completer generates assistant text from conversation turns. It is
// the session's only view of the language-model collaborator.
type Completer interface {
	Complete(ctx context.Context, system string, turns []types.Message, opts llm.Options) (string, error)
}

// JobSearcher fetches live listings for a role title.
type JobSearcher interface {
	Search(ctx context.Context, role string) ([]types.Listing, error)
}

// Machine applies session transitions. Events are dispatched
// synchronously; each one runs to completion, collaborator calls
// included, before the next is accepted.
type Machine struct {
	state     *State
	completer Completer
	jobs      JobSearcher
	logger    *zap.Logger
	persona   string
}

// NewMachine creates a state machine over a fresh session state.
func NewMachine(completer Completer, jobs JobSearcher, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		state:     NewState(),
		completer: completer,
		jobs:      jobs,
		logger:    logger,
		persona:   prompts.MustGet("persona"),
	}
}

// State exposes the session record for rendering. Callers must treat
// it as read-only; all mutation goes through events.
func (m *Machine) State() *State {
	return m.state
}

// HandleUserMessage processes one typed message: append it, classify
// it, and apply the matching transition.
func (m *Machine) HandleUserMessage(ctx context.Context, text string) {
	m.state.History = append(m.state.History, types.Message{Role: types.RoleUser, Content: text})

	result := classify.Classify(text)
	m.logger.Debug("classified message",
		zap.String("session", m.state.ID.String()),
		zap.String("kind", result.Kind.String()))

	switch result.Kind {
	case classify.KindSkills:
		m.handleSkills(result.Domains)
	case classify.KindDomainMention:
		m.handleDomainMention(result.Domain)
	default:
		m.appendAssistant(m.converse(ctx, text))
	}
}

// handleSkills acknowledges the skill set and accumulates up to three
// role suggestions per inferred domain. Suggestions are concatenated
// in domain order and deliberately not deduplicated across domains.
func (m *Machine) handleSkills(domains []taxonomy.Domain) {
	m.appendAssistant(msgSkillsAck)

	var suggested []types.RoleSuggestion
	for _, d := range domains {
		roles := taxonomy.RolesFor(d)
		if len(roles) > rolesPerSkillDomain {
			roles = roles[:rolesPerSkillDomain]
		}
		suggested = append(suggested, roles...)
		m.state.addDomainSeen(d)
	}
	m.state.SuggestedRoles = suggested
}

// handleDomainMention switches the active domain and repopulates the
// suggestion list. Any previously selected role and its roadmap,
// resources, and jobs are cleared in the same transition.
func (m *Machine) handleDomainMention(domain taxonomy.Domain) {
	m.state.ActiveDomain = domain
	m.state.SuggestedRoles = nil

	if domain != taxonomy.DomainUnknown {
		m.state.SuggestedRoles = taxonomy.RolesFor(domain)
		m.appendAssistant(fmt.Sprintf(msgDomainSwitch, titleCase(string(domain))))
		m.state.addDomainSeen(domain)
	} else {
		m.appendAssistant(msgUnknownDomain)
	}

	m.state.SelectedRole = ""
	m.state.Roadmap = ""
	m.state.StudyResources = ""
	m.state.Jobs = nil
}

// SelectRole reacts to the user choosing a suggested role: roadmap,
// study resources, and jobs are fetched sequentially (in that order)
// and stored together. Suggestions are retained in state; the renderer
// hides them while a role is selected.
func (m *Machine) SelectRole(ctx context.Context, roleTitle string) {
	m.state.SelectedRole = roleTitle
	domain := string(m.state.ActiveDomain)

	roadmapPrompt := prompts.Format(prompts.MustGet("roadmap"), map[string]string{
		"Role":   roleTitle,
		"Domain": domain,
	})
	m.state.Roadmap = m.generate(ctx, roadmapPrompt, llm.TierAdvanced, roadmapMaxTokens)

	resourcesPrompt := prompts.Format(prompts.MustGet("resources"), map[string]string{
		"Role":   roleTitle,
		"Domain": domain,
	})
	m.state.StudyResources = m.generate(ctx, resourcesPrompt, llm.TierStandard, resourcesMaxTokens)

	m.state.Jobs = m.searchJobs(ctx, roleTitle)
}

// SelectDomainFromHistory re-activates a previously seen domain and
// resets the suggestion list to its catalog, clearing any selection.
func (m *Machine) SelectDomainFromHistory(domain taxonomy.Domain) {
	m.state.ActiveDomain = domain
	m.state.SuggestedRoles = taxonomy.RolesFor(domain)
	m.state.SelectedRole = ""
	m.state.Roadmap = ""
	m.state.StudyResources = ""
	m.state.Jobs = nil
}

// RefreshJobs re-runs the job search for the selected role. It is a
// no-op when no role is selected.
func (m *Machine) RefreshJobs(ctx context.Context) {
	if m.state.SelectedRole == "" {
		return
	}
	m.state.Jobs = m.searchJobs(ctx, m.state.SelectedRole)
}

// converse builds the bounded completion context: the persona, the
// trailing history window (which already contains the new user
// message), and the user text echoed once more as the live turn.
func (m *Machine) converse(ctx context.Context, text string) string {
	turns := make([]types.Message, 0, historyWindow+1)
	turns = append(turns, m.state.tail(historyWindow)...)
	turns = append(turns, types.Message{Role: types.RoleUser, Content: text})

	reply, err := m.completer.Complete(ctx, m.persona, turns, llm.Options{
		Tier:        llm.TierStandard,
		MaxTokens:   conversationMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return m.errorReply(err)
	}
	return reply
}

// generate runs a single-prompt completion, degrading to the
// error-channel string on failure so the caller can store the result
// unconditionally.
func (m *Machine) generate(ctx context.Context, prompt string, tier llm.ModelTier, maxTokens int32) string {
	turns := []types.Message{{Role: types.RoleUser, Content: prompt}}
	text, err := m.completer.Complete(ctx, m.persona, turns, llm.Options{
		Tier:        tier,
		MaxTokens:   maxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return m.errorReply(err)
	}
	return text
}

// searchJobs degrades any collaborator failure to an empty list. The
// failure is logged, not surfaced to the user.
func (m *Machine) searchJobs(ctx context.Context, role string) []types.Listing {
	listings, err := m.jobs.Search(ctx, role)
	if err != nil {
		m.logger.Warn("job search failed",
			zap.String("session", m.state.ID.String()),
			zap.String("role", role),
			zap.Error(err))
		return []types.Listing{}
	}
	return listings
}

// errorReply converts a completion error into the user-visible
// placeholder string.
func (m *Machine) errorReply(err error) string {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return warnMissingAPIKey
	}
	m.logger.Warn("completion failed",
		zap.String("session", m.state.ID.String()),
		zap.Error(err))
	return fmt.Sprintf(errReplyFormat, err)
}

func (m *Machine) appendAssistant(content string) {
	m.state.History = append(m.state.History, types.Message{Role: types.RoleAssistant, Content: content})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
