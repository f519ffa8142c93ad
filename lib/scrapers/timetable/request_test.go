package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormDataDefaults(t *testing.T) {
	form, err := SearchRequest{
		Year:     "2025",
		Semester: SemesterFall,
	}.formData()
	require.NoError(t, err)

	// unset optional filters encode as the form's wildcard/empty values
	require.Equal(t, map[string]string{
		"CAMPUS":      "0",
		"TERMYEAR":    "202509",
		"CORE_CODE":   "AR%",
		"subj_code":   "%",
		"SCHDTYPE":    "%",
		"CRSE_NUMBER": "",
		"crn":         "",
		"open_only":   "",
		"sess_code":   "%",
	}, form)
}

func TestFormDataFilters(t *testing.T) {
	form, err := SearchRequest{
		Year:        "2025",
		Semester:    SemesterSpring,
		Campus:      CampusVirtual,
		Pathway:     PathwayCLE1,
		Subject:     "math",
		SectionType: SectionTypeLecture,
		Code:        "2114",
		CRN:         "83075",
		OpenOnly:    true,
		Modality:    ModalityHybrid,
	}.formData()
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"CAMPUS":      "10",
		"TERMYEAR":    "202501",
		"CORE_CODE":   "AR01",
		"subj_code":   "MATH",
		"SCHDTYPE":    "%L%",
		"CRSE_NUMBER": "2114",
		"crn":         "83075",
		"open_only":   "on",
		"sess_code":   "H",
	}, form)
}

func TestTermYearWinter(t *testing.T) {
	// winter terms belong to the previous calendar year on the wire
	require.Equal(t, "202412", termYear("2025", SemesterWinter))
	require.Equal(t, "202509", termYear("2025", SemesterFall))
	require.Equal(t, "202501", termYear("2025", SemesterSpring))
	require.Equal(t, "202506", termYear("2025", SemesterSummer))
}

func TestFormDataBadYear(t *testing.T) {
	for _, year := range []string{"", "20a5", "999", "12345", "1899", "2500", " 2025"} {
		_, err := SearchRequest{Year: year, Semester: SemesterFall}.formData()

		var invalidErr *InvalidParameterError
		require.ErrorAs(t, err, &invalidErr, "year %q", year)
		require.Equal(t, "year", invalidErr.Name)
	}
}

func TestFormDataBadEnums(t *testing.T) {
	_, err := SearchRequest{Year: "2025", Semester: Semester("13")}.formData()
	var invalidErr *InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)

	_, err = SearchRequest{Year: "2025", Semester: SemesterFall, Modality: Modality("Z")}.formData()
	require.ErrorAs(t, err, &invalidErr)

	_, err = SearchRequest{Year: "2025", Semester: SemesterFall, Campus: Campus("99")}.formData()
	require.ErrorAs(t, err, &invalidErr)

	_, err = SearchRequest{Year: "2025", Semester: SemesterFall, Pathway: Pathway("XX")}.formData()
	require.ErrorAs(t, err, &invalidErr)

	_, err = SearchRequest{Year: "2025", Semester: SemesterFall, SectionType: SectionType("%Z%")}.formData()
	require.ErrorAs(t, err, &invalidErr)
}

func TestParseSemesterNames(t *testing.T) {
	s, err := ParseSemester("Fall")
	require.NoError(t, err)
	require.Equal(t, SemesterFall, s)

	s, err = ParseSemester(" winter ")
	require.NoError(t, err)
	require.Equal(t, SemesterWinter, s)

	_, err = ParseSemester("autumn")
	var invalidErr *InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
}

func TestParseModalityNames(t *testing.T) {
	m, err := ParseModality("online-async")
	require.NoError(t, err)
	require.Equal(t, ModalityOnlineAsync, m)

	_, err = ParseModality("telepathic")
	var invalidErr *InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
}
