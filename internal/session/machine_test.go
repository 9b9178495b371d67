package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/prompts"
	"github.com/jonathan/career-mentor/internal/taxonomy"
	"github.com/jonathan/career-mentor/internal/types"
)

type completeCall struct {
	system string
	turns  []types.Message
	opts   llm.Options
}

// stubCompleter records every call and replies from a fixed queue.
type stubCompleter struct {
	replies []string
	err     error
	calls   []completeCall
}

func (s *stubCompleter) Complete(_ context.Context, system string, turns []types.Message, opts llm.Options) (string, error) {
	s.calls = append(s.calls, completeCall{system: system, turns: append([]types.Message(nil), turns...), opts: opts})
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "ok", nil
	}
	reply := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return reply, nil
}

// stubJobSearcher records queried roles and returns fixed listings.
type stubJobSearcher struct {
	listings []types.Listing
	err      error
	queries  []string
}

func (s *stubJobSearcher) Search(_ context.Context, role string) ([]types.Listing, error) {
	s.queries = append(s.queries, role)
	if s.err != nil {
		return nil, s.err
	}
	return s.listings, nil
}

func newTestMachine(completer *stubCompleter, searcher *stubJobSearcher) *Machine {
	return NewMachine(completer, searcher, nil)
}

func TestHandleUserMessage_Conversation(t *testing.T) {
	completer := &stubCompleter{replies: []string{"happy to help"}}
	m := newTestMachine(completer, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "hello")

	state := m.State()
	require.Len(t, state.History, 2)
	assert.Equal(t, types.RoleUser, state.History[0].Role)
	assert.Equal(t, "hello", state.History[0].Content)
	assert.Equal(t, types.RoleAssistant, state.History[1].Role)
	assert.Equal(t, "happy to help", state.History[1].Content)
	assert.Equal(t, PhaseIdle, state.Phase())

	require.Len(t, completer.calls, 1)
	call := completer.calls[0]
	assert.Equal(t, prompts.MustGet("persona"), call.system)
	assert.Equal(t, int32(600), call.opts.MaxTokens)
	assert.InDelta(t, 0.25, float64(call.opts.Temperature), 1e-6)
	// The live turn is the user text; the window already holds it too.
	assert.Equal(t, "hello", call.turns[len(call.turns)-1].Content)
}

func TestHandleUserMessage_ConversationWindowIsBounded(t *testing.T) {
	completer := &stubCompleter{}
	m := newTestMachine(completer, &stubJobSearcher{})

	for i := 0; i < 10; i++ {
		m.HandleUserMessage(context.Background(), "how are you")
	}

	last := completer.calls[len(completer.calls)-1]
	// 8 window messages plus the echoed live turn.
	assert.Len(t, last.turns, 9)
}

func TestHandleUserMessage_MissingKeyDegradesToWarning(t *testing.T) {
	m := newTestMachine(&stubCompleter{err: llm.ErrMissingAPIKey}, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "hello")

	state := m.State()
	require.Len(t, state.History, 2)
	assert.Equal(t, warnMissingAPIKey, state.History[1].Content)
}

func TestHandleUserMessage_CompleterFailureBecomesErrorReply(t *testing.T) {
	m := newTestMachine(&stubCompleter{err: errors.New("rate limited")}, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "hello")

	state := m.State()
	require.Len(t, state.History, 2)
	assert.True(t, strings.HasPrefix(state.History[1].Content, "⚠️ AI error:"))
	assert.Contains(t, state.History[1].Content, "rate limited")
}

func TestHandleUserMessage_DomainMention(t *testing.T) {
	m := newTestMachine(&stubCompleter{}, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "tell me about ai")

	state := m.State()
	assert.Equal(t, taxonomy.DomainAI, state.ActiveDomain)
	assert.Len(t, state.SuggestedRoles, 5)
	assert.Equal(t, "AI Engineer", state.SuggestedRoles[0].Title)
	assert.Equal(t, []taxonomy.Domain{taxonomy.DomainAI}, state.DomainsSeen)
	assert.Equal(t, PhaseDomainActive, state.Phase())

	require.Len(t, state.History, 2)
	assert.Contains(t, state.History[1].Content, "Switching gears")
}

func TestHandleUserMessage_UnknownDomainMention(t *testing.T) {
	m := newTestMachine(&stubCompleter{}, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "software engineer")

	state := m.State()
	assert.Equal(t, taxonomy.DomainUnknown, state.ActiveDomain)
	assert.Empty(t, state.SuggestedRoles)
	assert.Empty(t, state.DomainsSeen)

	require.Len(t, state.History, 2)
	assert.Equal(t, msgUnknownDomain, state.History[1].Content)
}

func TestHandleUserMessage_Skills(t *testing.T) {
	m := newTestMachine(&stubCompleter{}, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "python and excel skills")

	state := m.State()
	require.Len(t, state.SuggestedRoles, 3)
	dataRoles := taxonomy.RolesFor(taxonomy.DomainData)
	assert.Equal(t, dataRoles[:3], state.SuggestedRoles)
	assert.Equal(t, []taxonomy.Domain{taxonomy.DomainData}, state.DomainsSeen)

	require.Len(t, state.History, 2)
	assert.Equal(t, msgSkillsAck, state.History[1].Content)
}

func TestHandleUserMessage_SkillsAcrossDomainsConcatenate(t *testing.T) {
	m := newTestMachine(&stubCompleter{}, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "I know react and sql")

	state := m.State()
	// Three roles per domain, data before web in canonical order.
	require.Len(t, state.SuggestedRoles, 6)
	assert.Equal(t, "Data Analyst", state.SuggestedRoles[0].Title)
	assert.Equal(t, "Frontend Developer", state.SuggestedRoles[3].Title)
	assert.Equal(t, []taxonomy.Domain{taxonomy.DomainData, taxonomy.DomainWeb}, state.DomainsSeen)
}

func TestDomainsSeen_InsertionOrderNoDuplicates(t *testing.T) {
	m := newTestMachine(&stubCompleter{}, &stubJobSearcher{})

	for _, text := range []string{"tell me about web", "and data", "web again"} {
		m.HandleUserMessage(context.Background(), text)
	}

	assert.Equal(t, []taxonomy.Domain{taxonomy.DomainWeb, taxonomy.DomainData}, m.State().DomainsSeen)
}

func TestSelectRole_PopulatesEverythingTogether(t *testing.T) {
	completer := &stubCompleter{replies: []string{
		"Week 1 basics Week 2 practice Week 3 project Week 4 interview",
		"some great books",
	}}
	searcher := &stubJobSearcher{listings: []types.Listing{
		{Title: "Data Analyst", Company: "Contoso Analytics"},
	}}
	m := newTestMachine(completer, searcher)

	m.HandleUserMessage(context.Background(), "tell me about data")
	m.SelectRole(context.Background(), "Data Analyst")

	state := m.State()
	assert.Equal(t, "Data Analyst", state.SelectedRole)
	assert.NotEmpty(t, state.Roadmap)
	assert.Equal(t, "some great books", state.StudyResources)
	assert.Len(t, state.Jobs, 1)
	assert.Equal(t, PhaseRoleSelected, state.Phase())

	// Suggestions stay in state; the renderer hides them.
	assert.Len(t, state.SuggestedRoles, 5)

	// Collaborators run in the fixed order roadmap -> resources -> jobs.
	require.Len(t, completer.calls, 2)
	assert.Contains(t, completer.calls[0].turns[0].Content, "4-week roadmap")
	assert.Contains(t, completer.calls[0].turns[0].Content, "Data Analyst")
	assert.Contains(t, completer.calls[0].turns[0].Content, "data")
	assert.Contains(t, completer.calls[1].turns[0].Content, "List top resources")
	assert.Equal(t, []string{"Data Analyst"}, searcher.queries)

	assert.Equal(t, int32(1000), completer.calls[0].opts.MaxTokens)
	assert.Equal(t, int32(400), completer.calls[1].opts.MaxTokens)
}

func TestSelectRole_FailuresStillPopulateTogether(t *testing.T) {
	m := newTestMachine(
		&stubCompleter{err: errors.New("offline")},
		&stubJobSearcher{err: errors.New("provider down")},
	)

	m.HandleUserMessage(context.Background(), "tell me about data")
	m.SelectRole(context.Background(), "Data Analyst")

	state := m.State()
	assert.Equal(t, "Data Analyst", state.SelectedRole)
	assert.Contains(t, state.Roadmap, "⚠️ AI error:")
	assert.Contains(t, state.StudyResources, "⚠️ AI error:")
	// Job search failure degrades to an empty, non-nil list.
	require.NotNil(t, state.Jobs)
	assert.Empty(t, state.Jobs)
}

func TestHandleUserMessage_DomainSwitchClearsSelection(t *testing.T) {
	completer := &stubCompleter{replies: []string{"Week 1 go", "books"}}
	searcher := &stubJobSearcher{listings: []types.Listing{{Title: "SRE"}}}
	m := newTestMachine(completer, searcher)

	m.HandleUserMessage(context.Background(), "tell me about data")
	m.SelectRole(context.Background(), "Data Analyst")
	m.HandleUserMessage(context.Background(), "what about the cloud field")

	state := m.State()
	assert.Equal(t, taxonomy.DomainCloud, state.ActiveDomain)
	assert.Empty(t, state.SelectedRole)
	assert.Empty(t, state.Roadmap)
	assert.Empty(t, state.StudyResources)
	assert.Empty(t, state.Jobs)
	assert.Len(t, state.SuggestedRoles, 5)
	assert.Equal(t, "Cloud Engineer", state.SuggestedRoles[0].Title)
	assert.Equal(t, []taxonomy.Domain{taxonomy.DomainData, taxonomy.DomainCloud}, state.DomainsSeen)
}

func TestSelectDomainFromHistory(t *testing.T) {
	completer := &stubCompleter{replies: []string{"Week 1 go", "books"}}
	m := newTestMachine(completer, &stubJobSearcher{})

	m.HandleUserMessage(context.Background(), "tell me about web")
	m.HandleUserMessage(context.Background(), "now the data field")
	m.SelectRole(context.Background(), "Data Analyst")

	m.SelectDomainFromHistory(taxonomy.DomainWeb)

	state := m.State()
	assert.Equal(t, taxonomy.DomainWeb, state.ActiveDomain)
	assert.Empty(t, state.SelectedRole)
	assert.Empty(t, state.Roadmap)
	assert.Len(t, state.SuggestedRoles, 5)
	assert.Equal(t, "Frontend Developer", state.SuggestedRoles[0].Title)
	assert.Equal(t, PhaseDomainActive, state.Phase())
}

func TestRefreshJobs(t *testing.T) {
	searcher := &stubJobSearcher{listings: []types.Listing{{Title: "Data Analyst"}}}
	completer := &stubCompleter{replies: []string{"Week 1 go", "books"}}
	m := newTestMachine(completer, searcher)

	// No selected role: no search happens.
	m.RefreshJobs(context.Background())
	assert.Empty(t, searcher.queries)

	m.HandleUserMessage(context.Background(), "tell me about data")
	m.SelectRole(context.Background(), "Data Analyst")
	require.Len(t, searcher.queries, 1)

	searcher.listings = []types.Listing{{Title: "Data Analyst"}, {Title: "BI Analyst"}}
	m.RefreshJobs(context.Background())

	assert.Len(t, searcher.queries, 2)
	assert.Len(t, m.State().Jobs, 2)
}
