package timetable

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"vt-timetable/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Markers the timetable embeds in otherwise-200 responses. "No sections
// found" is a legitimate empty result and must not be confused with a
// page whose structure we no longer understand.
const (
	invalidRequestMarker = "THERE IS AN ERROR WITH YOUR REQUEST"
	problemMarker        = "There was a problem with your request"
	noSectionsMarker     = "NO SECTIONS FOUND FOR THIS INQUIRY"

	additionalTimesMarker = "* Additional Times *"
)

var redMsgRegex = regexp.MustCompile(`<b class=red_msg><li>(.+?)</b>`)

// header labels of the results table, keyed by their normalized text.
// resolving columns by label instead of position keeps the parser
// working when the timetable reorders or inserts columns.
var headerAliases = map[string]string{
	"crn":           "crn",
	"course":        "course",
	"title":         "title",
	"schedule type": "schedule type",
	"modality":      "modality",
	"cr hrs":        "credit hours",
	"credit hours":  "credit hours",
	"cap":           "capacity",
	"capacity":      "capacity",
	"enrl":          "enrollment",
	"enrollment":    "enrollment",
	"wl":            "waitlist",
	"wl cnt":        "waitlist",
	"wait list":     "waitlist",
	"waitlist":      "waitlist",
	"instructor":    "instructor",
	"days":          "days",
	"begin":         "begin",
	"end":           "end",
	"location":      "location",
	"exam":          "exam",
}

var crnRegex = regexp.MustCompile(`\d{3,6}`)

// summer titles carry the session date, e.g. "- 05-JUL-2025 Calculus"
var summerTitleRegex = regexp.MustCompile(`- ?\d{2}-[A-Z]{3}-\d{4}\s*(.+)$`)

func parseSearchResults(year string, semester Semester, body []byte) ([]Course, error) {
	text := string(body)
	if strings.Contains(text, invalidRequestMarker) {
		return nil, &InvalidParameterError{
			Reason: "the timetable rejected the search parameters",
		}
	}
	if strings.Contains(text, problemMarker) {
		if strings.Contains(text, noSectionsMarker) {
			return []Course{}, nil
		}
		if m := redMsgRegex.FindStringSubmatch(text); m != nil {
			return nil, &InvalidParameterError{
				Reason: htmlutil.CleanText(m[1]),
			}
		}
		return nil, &ParseError{
			Reason: "the timetable reported a problem without an explanation",
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	rows, columns := findResultsTable(doc)
	if rows == nil {
		return nil, &ParseError{Reason: "could not find the section results table"}
	}

	var courses []Course
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		if strings.Contains(row.Text(), additionalTimesMarker) {
			if len(courses) > 0 {
				mergeMeetings(&courses[len(courses)-1], cells, columns)
			}
			return
		}

		course, ok := parseCourseRow(year, semester, cells, columns)
		if !ok {
			return
		}
		courses = append(courses, course)
	})

	return courses, nil
}

// findResultsTable locates the results table by its structural marker:
// a dataentrytable whose header row carries a CRN column. Returns the
// data rows and the header-label -> cell-index mapping.
func findResultsTable(doc *goquery.Document) (*goquery.Selection, map[string]int) {
	var rows *goquery.Selection
	var columns map[string]int

	doc.Find("table.dataentrytable").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		allRows := table.Find("tr")
		if allRows.Length() < 1 {
			return true
		}

		header := allRows.First()
		cols := map[string]int{}
		header.Find("td, th").Each(func(i int, cell *goquery.Selection) {
			label := normalizeKey(htmlutil.CleanText(cell.Text()))
			canonical, ok := headerAliases[label]
			if !ok {
				return
			}
			if _, taken := cols[canonical]; !taken {
				cols[canonical] = i
			}
		})

		if _, ok := cols["crn"]; !ok {
			return true
		}
		if _, ok := cols["course"]; !ok {
			return true
		}

		rows = allRows.Slice(1, allRows.Length())
		columns = cols
		return false
	})

	return rows, columns
}

func cellText(cells *goquery.Selection, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= cells.Length() {
		return ""
	}
	return htmlutil.CleanText(cells.Eq(idx).Text())
}

// parseCount coerces a numeric cell, falling back to the UnknownCount
// sentinel when the cell is blank or non-numeric.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return UnknownCount
	}
	return n
}

func parseCourseRow(year string, semester Semester, cells *goquery.Selection, columns map[string]int) (Course, bool) {
	crn := crnRegex.FindString(cellText(cells, columns, "crn"))
	if crn == "" {
		// spacer and comment rows carry no CRN
		return Course{}, false
	}

	subject, code := splitCourseField(cellText(cells, columns, "course"))

	title := cellText(cells, columns, "title")
	if semester == SemesterSummer {
		if m := summerTitleRegex.FindStringSubmatch(title); m != nil {
			title = strings.TrimSpace(m[1])
		}
	}

	course := Course{
		Year:        year,
		Semester:    semester,
		CRN:         crn,
		Subject:     subject,
		Code:        code,
		Title:       title,
		SectionType: sectionTypeFromPageText(cellText(cells, columns, "schedule type")),
		Modality:    modalityFromPageText(cellText(cells, columns, "modality")),
		CreditHours: cellText(cells, columns, "credit hours"),
		Capacity:    parseCount(cellText(cells, columns, "capacity")),
		Enrollment:  parseCount(cellText(cells, columns, "enrollment")),
		Waitlist:    parseCount(cellText(cells, columns, "waitlist")),
		Instructor:  cellText(cells, columns, "instructor"),
		Schedule:    map[Day][]MeetingTime{},
	}
	mergeMeetings(&course, cells, columns)

	return course, true
}

// splitCourseField splits "MATH-2114" into subject and course code.
func splitCourseField(s string) (string, string) {
	i := strings.LastIndex(s, "-")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func sectionTypeFromPageText(text string) SectionType {
	if strings.HasPrefix(text, "ONLINE COURSE") {
		return SectionTypeOnline
	}
	if len(text) > 0 {
		if t, ok := sectionTypesByLetter[text[0]]; ok {
			return t
		}
	}
	return SectionTypeUnspecified
}

// mergeMeetings folds the row's days/times into the course schedule.
// Used both for the course's own row and for "* Additional Times *"
// continuation rows. Arranged-time meetings are skipped.
func mergeMeetings(course *Course, cells *goquery.Selection, columns map[string]int) {
	meeting := MeetingTime{
		Begin:    cellText(cells, columns, "begin"),
		End:      cellText(cells, columns, "end"),
		Location: cellText(cells, columns, "location"),
	}

	for _, token := range strings.Fields(cellText(cells, columns, "days")) {
		day, ok := daysByLetter[token]
		if !ok || day == Arranged {
			continue
		}
		course.Schedule[day] = append(course.Schedule[day], meeting)
	}
}

// subjects are populated by an inline script on the landing page, in
// the form `new Option("MATH - Mathematics", ...)`.
var subjectOptionRegex = regexp.MustCompile(`\("([A-Z0-9]+) - (.+?)"`)

func parseSubjects(body []byte) ([]Subject, error) {
	matches := subjectOptionRegex.FindAllStringSubmatch(string(body), -1)
	if matches == nil {
		return nil, &ParseError{Reason: "could not find the subject list"}
	}

	seen := map[string]bool{}
	var subjects []Subject
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		subjects = append(subjects, Subject{Code: m[1], Name: m[2]})
	}
	return subjects, nil
}

var termTextRegex = regexp.MustCompile(`^([A-Za-z]+) (\d{4})$`)

func parseTerms(body []byte) ([]Term, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	sel := doc.Find("select[name=TERMYEAR]")
	if sel.Length() == 0 {
		return nil, &ParseError{Reason: "could not find the term dropdown"}
	}

	seen := map[Term]bool{}
	var terms []Term
	for _, opt := range htmlutil.SelectOptions(sel) {
		m := termTextRegex.FindStringSubmatch(opt.Text)
		if m == nil {
			continue
		}
		semester, ok := semestersByName[normalizeKey(m[1])]
		if !ok {
			continue
		}

		// the option text carries the calendar year, the option value
		// carries the TERMYEAR code (which differs for winter terms)
		term := Term{Year: m[2], Semester: semester}
		if seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return nil, &ParseError{Reason: "the term dropdown has no recognizable terms"}
	}
	return terms, nil
}
