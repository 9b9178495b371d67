package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceRoadmap_FourWeeks(t *testing.T) {
	roadmap := "Intro text.\nWeek 1: basics\nlearn things\nWeek 2: practice\nWeek 3: build\nWeek 4: interview prep\nclosing notes"

	sections := SliceRoadmap(roadmap)
	require.Len(t, sections, 4)

	assert.Equal(t, "Week 1", sections[0].Label)
	assert.Contains(t, sections[0].Content, "basics")
	assert.Contains(t, sections[0].Content, "learn things")
	assert.NotContains(t, sections[0].Content, "practice")

	// The final section runs to the end of the text.
	assert.Contains(t, sections[3].Content, "closing notes")
}

func TestSliceRoadmap_MissingWeekIsSkipped(t *testing.T) {
	roadmap := "Week 1: basics\nWeek 2: practice\nWeek 4: interview prep"

	sections := SliceRoadmap(roadmap)
	require.Len(t, sections, 3)
	assert.Equal(t, "Week 1", sections[0].Label)
	assert.Equal(t, "Week 2", sections[1].Label)
	assert.Equal(t, "Week 4", sections[2].Label)

	// Without a "Week 3" marker, week 2 runs to the end of the text.
	// Slicing degrades, it never errors.
	assert.Contains(t, sections[1].Content, "practice")
	assert.Contains(t, sections[1].Content, "Week 4")
}

func TestSliceRoadmap_NoMarkers(t *testing.T) {
	assert.Empty(t, SliceRoadmap("just some text with no structure"))
	assert.Empty(t, SliceRoadmap(""))
}
