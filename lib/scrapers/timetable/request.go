package timetable

import (
	"strconv"
	"strings"
)

// SearchRequest holds the parameters for one timetable search. Year and
// Semester are mandatory, everything else is optional and combines
// freely. Zero values mean "don't filter".
type SearchRequest struct {
	Year     string
	Semester Semester

	Campus      Campus
	Pathway     Pathway
	Subject     string
	SectionType SectionType
	Code        string
	CRN         string
	OpenOnly    bool
	Modality    Modality

	// Instructor is matched client-side against the instructor column
	// after parsing; the remote form has no instructor field.
	Instructor string
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

const (
	minPlausibleYear = 1990
	maxPlausibleYear = 2100
)

func validateYear(year string) error {
	n, err := strconv.Atoi(year)
	if err != nil || len(year) != 4 {
		return &InvalidParameterError{
			Name:   "year",
			Value:  year,
			Reason: "expected a four digit number",
		}
	}
	if n < minPlausibleYear || n > maxPlausibleYear {
		return &InvalidParameterError{
			Name:   "year",
			Value:  year,
			Reason: "year is out of range",
		}
	}
	return nil
}

// termYear builds the composite TERMYEAR code, e.g. "202509" for fall
// 2025. Winter terms belong to the previous calendar year on the wire:
// winter 2025 is "202412".
func termYear(year string, semester Semester) string {
	if semester == SemesterWinter {
		n, _ := strconv.Atoi(year)
		return strconv.Itoa(n-1) + string(semester)
	}
	return year + string(semester)
}

// formData validates the request and translates it into the form fields
// the timetable endpoint expects.
func (r SearchRequest) formData() (map[string]string, error) {
	if err := validateYear(r.Year); err != nil {
		return nil, err
	}
	if _, ok := semesterNames[r.Semester]; !ok {
		return nil, &InvalidParameterError{
			Name:   "semester",
			Value:  string(r.Semester),
			Reason: "unrecognized semester code",
		}
	}

	campus := r.Campus
	if campus == "" {
		campus = CampusBlacksburg
	}
	if _, ok := campusNames[campus]; !ok {
		return nil, &InvalidParameterError{
			Name:   "campus",
			Value:  string(r.Campus),
			Reason: "unrecognized campus code",
		}
	}

	pathway := r.Pathway
	if pathway == "" {
		pathway = PathwayAll
	}
	if !knownPathways[pathway] {
		return nil, &InvalidParameterError{
			Name:   "pathway",
			Value:  string(r.Pathway),
			Reason: "unrecognized pathway code",
		}
	}

	sectionType := r.SectionType
	if sectionType == SectionTypeUnspecified {
		sectionType = SectionTypeAll
	}
	if _, ok := sectionTypeNames[sectionType]; !ok {
		return nil, &InvalidParameterError{
			Name:   "section type",
			Value:  string(r.SectionType),
			Reason: "unrecognized section type code",
		}
	}

	modality := r.Modality
	if modality == ModalityUnspecified {
		modality = ModalityAll
	}
	if _, ok := modalityNames[modality]; !ok {
		return nil, &InvalidParameterError{
			Name:   "modality",
			Value:  string(r.Modality),
			Reason: "unrecognized modality code",
		}
	}

	// an empty subject means "all subjects" on the wire
	subject := strings.ToUpper(strings.TrimSpace(r.Subject))
	if subject == "" {
		subject = "%"
	}

	openOnly := ""
	if r.OpenOnly {
		openOnly = "on"
	}

	return map[string]string{
		"CAMPUS":      string(campus),
		"TERMYEAR":    termYear(r.Year, r.Semester),
		"CORE_CODE":   string(pathway),
		"subj_code":   subject,
		"SCHDTYPE":    string(sectionType),
		"CRSE_NUMBER": strings.TrimSpace(r.Code),
		"crn":         strings.TrimSpace(r.CRN),
		"open_only":   openOnly,
		"sess_code":   string(modality),
	}, nil
}
