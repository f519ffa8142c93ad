package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var suggestFixture = []Subject{
	{Code: "AAEC", Name: "Agricultural and Applied Economics"},
	{Code: "CS", Name: "Computer Science"},
	{Code: "ENGL", Name: "English"},
	{Code: "MATH", Name: "Mathematics"},
	{Code: "PHYS", Name: "Physics"},
}

func TestSuggestSubjects(t *testing.T) {
	suggestions := SuggestSubjects(suggestFixture, "mathematic", 2)
	require.Len(t, suggestions, 2)
	require.Equal(t, "MATH", suggestions[0].Code)

	suggestions = SuggestSubjects(suggestFixture, "computer sceince", 1)
	require.Len(t, suggestions, 1)
	require.Equal(t, "CS", suggestions[0].Code)
}

func TestSuggestSubjectsBounds(t *testing.T) {
	suggestions := SuggestSubjects(suggestFixture, "physics", 100)
	require.Len(t, suggestions, len(suggestFixture))

	require.Empty(t, SuggestSubjects(nil, "physics", 3))
}
