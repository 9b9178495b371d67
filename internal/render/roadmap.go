package render

import (
	"fmt"
	"strings"
)

// roadmapWeeks is the number of weekly sections a roadmap is expected
// to contain.
const roadmapWeeks = 4

// WeekSection is one collapsible slice of a generated roadmap.
type WeekSection struct {
	Label   string
	Content string
}

// SliceRoadmap cuts the roadmap text between consecutive literal
// "Week N" markers. The text is stored unvalidated, so missing or
// malformed markers simply drop that week rather than erroring; a
// roadmap with no markers at all yields no sections.
func SliceRoadmap(roadmap string) []WeekSection {
	var sections []WeekSection
	for w := 1; w <= roadmapWeeks; w++ {
		marker := fmt.Sprintf("Week %d", w)
		start := strings.Index(roadmap, marker)
		if start < 0 {
			continue
		}

		end := len(roadmap)
		next := fmt.Sprintf("Week %d", w+1)
		if idx := strings.Index(roadmap[start:], next); idx >= 0 {
			end = start + idx
		}

		sections = append(sections, WeekSection{
			Label:   marker,
			Content: strings.TrimSpace(roadmap[start:end]),
		})
	}
	return sections
}
