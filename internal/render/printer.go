// Package render draws session state into a terminal: chat replies,
// role cards, job listings, domain history, and the sliced roadmap.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-mentor/internal/session"
	"github.com/jonathan/career-mentor/internal/taxonomy"
	"github.com/jonathan/career-mentor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxJobsToShow caps the job listings displayed per render
	maxJobsToShow = 8
)

// Printer handles formatted session output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMessage writes one chat bubble.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMessage(msg types.Message) {
	speaker := "You"
	if msg.Role == types.RoleAssistant {
		speaker = "CareerMate"
	}
	fmt.Fprintf(p.out, "%s: %s\n", speaker, msg.Content)
}

// PrintNewMessages writes every history entry from index `from`
// onward and returns the new high-water mark.
func (p *Printer) PrintNewMessages(state *session.State, from int) int {
	for i := from; i < len(state.History); i++ {
		p.PrintMessage(state.History[i])
	}
	return len(state.History)
}

// PrintSuggestedRoles outputs the current role cards. Suggestions are
// hidden once a role has been selected.
func (p *Printer) PrintSuggestedRoles(state *session.State) {
	if len(state.SuggestedRoles) == 0 || state.SelectedRole != "" {
		return
	}

	var sb strings.Builder
	for i, role := range state.SuggestedRoles {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, role.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", role.Description))
	}
	sb.WriteString("\nChoose one with /role <number>")

	p.printBox("SUGGESTED ROLES", sb.String())
}

// PrintJobs outputs the live job listings for the selected role.
func (p *Printer) PrintJobs(state *session.State) {
	if state.SelectedRole == "" {
		p.printBox("LIVE JOBS", "Choose a role to see jobs here.")
		return
	}
	if len(state.Jobs) == 0 {
		p.printBox("LIVE JOBS", "No listings found right now. Try /jobs to refresh.")
		return
	}

	var sb strings.Builder
	count := min(len(state.Jobs), maxJobsToShow)
	for i := 0; i < count; i++ {
		j := state.Jobs[i]
		sb.WriteString(fmt.Sprintf("%d. %s — %s", i+1, j.Title, j.Company))
		if j.City != "" {
			sb.WriteString(fmt.Sprintf(" • %s", j.City))
		}
		sb.WriteString("\n")
		if j.Description != "" {
			desc := strings.ReplaceAll(j.Description, "\n", " ")
			if len(desc) > boxWidth-10 {
				desc = desc[:boxWidth-13] + "..."
			}
			sb.WriteString(fmt.Sprintf("   %s\n", desc))
		}
		if j.ApplyURL != "" {
			sb.WriteString(fmt.Sprintf("   Apply: %s\n", j.ApplyURL))
		}
	}
	if len(state.Jobs) > maxJobsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more listings", len(state.Jobs)-maxJobsToShow))
	}

	p.printBox(fmt.Sprintf("LIVE JOBS — %s", state.SelectedRole), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDomainsSeen lists the domains explored so far, most recent
// first.
func (p *Printer) PrintDomainsSeen(state *session.State) {
	if len(state.DomainsSeen) == 0 {
		p.printBox("DOMAINS EXPLORED", "None yet. Tell me about a field you like.")
		return
	}

	var sb strings.Builder
	for i := len(state.DomainsSeen) - 1; i >= 0; i-- {
		d := state.DomainsSeen[i]
		mark := " "
		if d == state.ActiveDomain {
			mark = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, d))
	}
	sb.WriteString("\nRevisit one with /domain <name>")

	p.printBox("DOMAINS EXPLORED", sb.String())
}

// PrintRoadmap outputs the sliced 4-week roadmap and the study
// resources section.
func (p *Printer) PrintRoadmap(state *session.State) {
	if state.Roadmap == "" {
		return
	}

	sections := SliceRoadmap(state.Roadmap)
	if len(sections) == 0 {
		// No week markers; show the text whole rather than dropping it.
		p.printBox("4-WEEK ROADMAP", state.Roadmap)
	} else {
		for _, section := range sections {
			p.printBox(section.Label, section.Content)
		}
	}

	resources := state.StudyResources
	if resources == "" {
		resources = "No study resources found."
	}
	p.printBox("STUDY RESOURCES", resources)
}

// PrintClassification outputs a one-shot classifier result for the
// debug subcommand.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintClassification(kind string, domains []taxonomy.Domain, domain taxonomy.Domain) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kind:    %s\n", kind))
	switch {
	case len(domains) > 0:
		names := make([]string, len(domains))
		for i, d := range domains {
			names[i] = string(d)
		}
		sb.WriteString(fmt.Sprintf("Domains: %s", strings.Join(names, ", ")))
	case domain != taxonomy.DomainUnknown:
		sb.WriteString(fmt.Sprintf("Domain:  %s", domain))
	default:
		sb.WriteString("Domain:  (none)")
	}
	p.printBox("CLASSIFICATION", sb.String())
}

// PrintRoleCatalog outputs the fallback role list for a domain.
func (p *Printer) PrintRoleCatalog(domain taxonomy.Domain, roles []types.RoleSuggestion) {
	var sb strings.Builder
	for i, role := range roles {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, role.Title))
		sb.WriteString(fmt.Sprintf("   %s", role.Description))
		if i < len(roles)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("ROLES — %s", strings.ToUpper(string(domain))), sb.String())
}
