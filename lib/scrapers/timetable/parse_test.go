package timetable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func readFixture(t testing.TB, name string) []byte {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return contents
}

func TestParseSearchResults(t *testing.T) {
	courses, err := parseSearchResults("2025", SemesterFall, readFixture(t, "search_results.html"))
	require.NoError(t, err)

	expected := []Course{
		{
			Year:        "2025",
			Semester:    SemesterFall,
			CRN:         "83075",
			Subject:     "MATH",
			Code:        "2114",
			Title:       "Intro to Linear Algebra",
			SectionType: SectionTypeLecture,
			Modality:    ModalityInPerson,
			CreditHours: "3",
			Capacity:    30,
			Enrollment:  30,
			Waitlist:    5,
			Instructor:  "Jane Q. Smith",
			Schedule: map[Day][]MeetingTime{
				Monday:    {{Begin: "10:10AM", End: "11:00AM", Location: "MCB 113"}},
				Wednesday: {{Begin: "10:10AM", End: "11:00AM", Location: "MCB 113"}},
				Friday:    {{Begin: "10:10AM", End: "11:00AM", Location: "MCB 113"}},
				Tuesday:   {{Begin: "8:00AM", End: "9:15AM", Location: "MCB 120"}},
			},
		},
		{
			Year:        "2025",
			Semester:    SemesterFall,
			CRN:         "91234",
			Subject:     "CS",
			Code:        "3214",
			Title:       "Computer Systems",
			SectionType: SectionTypeOnline,
			Modality:    ModalityOnlineAsync,
			CreditHours: "3",
			Capacity:    UnknownCount,
			Enrollment:  UnknownCount,
			Waitlist:    UnknownCount,
			Instructor:  "Avery Jones",
			Schedule:    map[Day][]MeetingTime{},
		},
		{
			Year:        "2025",
			Semester:    SemesterFall,
			CRN:         "91500",
			Subject:     "ENGL",
			Code:        "1106",
			Title:       "First-Year Writing",
			SectionType: SectionTypeLecture,
			Modality:    ModalityHybrid,
			CreditHours: "3",
			Capacity:    25,
			Enrollment:  20,
			Waitlist:    0,
			Instructor:  "Bailey Lee",
			Schedule: map[Day][]MeetingTime{
				Tuesday:  {{Begin: "2:00PM", End: "3:15PM", Location: "SHANKS 160"}},
				Thursday: {{Begin: "2:00PM", End: "3:15PM", Location: "SHANKS 160"}},
			},
		},
	}

	if diff := cmp.Diff(expected, courses); diff != "" {
		t.Fatalf("parsed courses mismatch (-want +got):\n%s", diff)
	}

	// a full section and a section with unknown counts both have no
	// open seats, only the one with capacity > enrollment does
	require.False(t, courses[0].HasOpenSeats())
	require.False(t, courses[1].HasOpenSeats())
	require.True(t, courses[2].HasOpenSeats())
}

func TestParseSummerTitle(t *testing.T) {
	page := `<html><body><table class="dataentrytable">
<tr><td>CRN</td><td>Course</td><td>Title</td></tr>
<tr><td><b>50123</b></td><td>MATH-1226</td><td>- 05-JUL-2025 Calculus of a Single Variable</td></tr>
</table></body></html>`

	courses, err := parseSearchResults("2025", SemesterSummer, []byte(page))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Calculus of a Single Variable", courses[0].Title)
}

func TestParseColumnReorder(t *testing.T) {
	// column positions are resolved from the header labels, so a
	// reordered table still parses
	page := `<html><body><table class="dataentrytable">
<tr><td>Course</td><td>Title</td><td>CRN</td><td>Cap</td></tr>
<tr><td>STAT-3005</td><td>Statistical Methods</td><td><b>62001</b></td><td>45</td></tr>
</table></body></html>`

	courses, err := parseSearchResults("2025", SemesterFall, []byte(page))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "62001", courses[0].CRN)
	require.Equal(t, "STAT", courses[0].Subject)
	require.Equal(t, "3005", courses[0].Code)
	require.Equal(t, 45, courses[0].Capacity)
	require.Equal(t, UnknownCount, courses[0].Enrollment)
}

func TestParseNoResults(t *testing.T) {
	courses, err := parseSearchResults("2025", SemesterFall, readFixture(t, "no_results.html"))
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestParseInvalidRequestMarker(t *testing.T) {
	_, err := parseSearchResults("2025", SemesterFall, readFixture(t, "invalid_request.html"))

	var invalidErr *InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
}

func TestParseRemoteErrorMessage(t *testing.T) {
	_, err := parseSearchResults("2025", SemesterFall, readFixture(t, "red_msg.html"))

	var invalidErr *InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
	require.Contains(t, invalidErr.Reason, "CRN MUST BE")
}

func TestParseMissingTable(t *testing.T) {
	_, err := parseSearchResults("2025", SemesterFall, readFixture(t, "missing_table.html"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseSubjects(t *testing.T) {
	subjects, err := parseSubjects(readFixture(t, "landing.html"))
	require.NoError(t, err)

	// the fixture lists MATH twice, set semantics collapse it
	expected := []Subject{
		{Code: "AAEC", Name: "Agricultural and Applied Economics"},
		{Code: "CS", Name: "Computer Science"},
		{Code: "ENGL", Name: "English"},
		{Code: "MATH", Name: "Mathematics"},
		{Code: "PHYS", Name: "Physics"},
	}
	if diff := cmp.Diff(expected, subjects); diff != "" {
		t.Fatalf("parsed subjects mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSubjectsMissing(t *testing.T) {
	_, err := parseSubjects(readFixture(t, "missing_table.html"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseTerms(t *testing.T) {
	terms, err := parseTerms(readFixture(t, "landing.html"))
	require.NoError(t, err)

	// years come from the option text: the winter TERMYEAR code uses
	// the previous calendar year and must not leak into the result
	expected := []Term{
		{Year: "2026", Semester: SemesterSpring},
		{Year: "2026", Semester: SemesterWinter},
		{Year: "2025", Semester: SemesterFall},
		{Year: "2025", Semester: SemesterSummer},
	}
	if diff := cmp.Diff(expected, terms); diff != "" {
		t.Fatalf("parsed terms mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTermsMissing(t *testing.T) {
	_, err := parseTerms(readFixture(t, "missing_table.html"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}
