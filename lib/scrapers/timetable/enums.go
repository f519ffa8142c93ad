package timetable

import "fmt"

// The enum values below are the codes the timetable form expects on the
// wire, not display strings.

type Semester string

const (
	SemesterSpring Semester = "01"
	SemesterSummer Semester = "06"
	SemesterFall   Semester = "09"
	SemesterWinter Semester = "12"
)

var semesterNames = map[Semester]string{
	SemesterSpring: "Spring",
	SemesterSummer: "Summer",
	SemesterFall:   "Fall",
	SemesterWinter: "Winter",
}

var semestersByName = map[string]Semester{
	"spring": SemesterSpring,
	"summer": SemesterSummer,
	"fall":   SemesterFall,
	"winter": SemesterWinter,
}

func (s Semester) String() string {
	name, ok := semesterNames[s]
	if !ok {
		return fmt.Sprintf("Semester(%q)", string(s))
	}
	return name
}

func ParseSemester(name string) (Semester, error) {
	s, ok := semestersByName[normalizeKey(name)]
	if !ok {
		return "", &InvalidParameterError{
			Name:   "semester",
			Value:  name,
			Reason: "expected one of: spring, summer, fall, winter",
		}
	}
	return s, nil
}

type Campus string

const (
	CampusBlacksburg Campus = "0"
	CampusVirtual    Campus = "10"
)

var campusNames = map[Campus]string{
	CampusBlacksburg: "Blacksburg",
	CampusVirtual:    "Virtual",
}

func (c Campus) String() string {
	name, ok := campusNames[c]
	if !ok {
		return fmt.Sprintf("Campus(%q)", string(c))
	}
	return name
}

var campusesByName = map[string]Campus{
	"blacksburg": CampusBlacksburg,
	"virtual":    CampusVirtual,
}

func ParseCampus(name string) (Campus, error) {
	c, ok := campusesByName[normalizeKey(name)]
	if !ok {
		return "", &InvalidParameterError{
			Name:   "campus",
			Value:  name,
			Reason: "expected one of: blacksburg, virtual",
		}
	}
	return c, nil
}

type Modality string

const (
	ModalityAll         Modality = "%"
	ModalityInPerson    Modality = "A"
	ModalityHybrid      Modality = "H"
	ModalityOnlineSync  Modality = "N"
	ModalityOnlineAsync Modality = "O"
	// ModalityUnspecified absorbs modality text the parser does not
	// recognize. It is never sent as a search parameter.
	ModalityUnspecified Modality = ""
)

var modalityNames = map[Modality]string{
	ModalityAll:         "All",
	ModalityInPerson:    "In-Person",
	ModalityHybrid:      "Hybrid",
	ModalityOnlineSync:  "Online (Synchronous)",
	ModalityOnlineAsync: "Online (Asynchronous)",
	ModalityUnspecified: "Unspecified",
}

// display text used by the timetable's results table
var modalitiesByPageText = map[string]Modality{
	"Face-to-Face Instruction":       ModalityInPerson,
	"Hybrid (F2F & Online Instruc.)": ModalityHybrid,
	"Online with Synchronous Mtgs.":  ModalityOnlineSync,
	"Online: Asynchronous":           ModalityOnlineAsync,
}

var modalitiesByName = map[string]Modality{
	"all":          ModalityAll,
	"in-person":    ModalityInPerson,
	"hybrid":       ModalityHybrid,
	"online-sync":  ModalityOnlineSync,
	"online-async": ModalityOnlineAsync,
}

func (m Modality) String() string {
	name, ok := modalityNames[m]
	if !ok {
		return fmt.Sprintf("Modality(%q)", string(m))
	}
	return name
}

func ParseModality(name string) (Modality, error) {
	m, ok := modalitiesByName[normalizeKey(name)]
	if !ok {
		return "", &InvalidParameterError{
			Name:   "modality",
			Value:  name,
			Reason: "expected one of: all, in-person, hybrid, online-sync, online-async",
		}
	}
	return m, nil
}

// modalityFromPageText maps the results table's modality column to a
// Modality, defaulting to ModalityUnspecified rather than failing the
// whole parse on unrecognized text.
func modalityFromPageText(text string) Modality {
	m, ok := modalitiesByPageText[text]
	if !ok {
		return ModalityUnspecified
	}
	return m
}

type SectionType string

const (
	SectionTypeAll              SectionType = "%"
	SectionTypeIndependentStudy SectionType = "%I%"
	SectionTypeLab              SectionType = "%B%"
	SectionTypeLecture          SectionType = "%L%"
	SectionTypeRecitation       SectionType = "%C%"
	SectionTypeResearch         SectionType = "%R%"
	SectionTypeOnline           SectionType = "ONLINE"
	SectionTypeUnspecified      SectionType = ""
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeAll:              "All",
	SectionTypeIndependentStudy: "Independent Study",
	SectionTypeLab:              "Lab",
	SectionTypeLecture:          "Lecture",
	SectionTypeRecitation:       "Recitation",
	SectionTypeResearch:         "Research",
	SectionTypeOnline:           "Online",
	SectionTypeUnspecified:      "Unspecified",
}

var sectionTypesByName = map[string]SectionType{
	"all":               SectionTypeAll,
	"independent-study": SectionTypeIndependentStudy,
	"lab":               SectionTypeLab,
	"lecture":           SectionTypeLecture,
	"recitation":        SectionTypeRecitation,
	"research":          SectionTypeResearch,
	"online":            SectionTypeOnline,
}

// single-letter codes used by the Schedule Type column
var sectionTypesByLetter = map[byte]SectionType{
	'I': SectionTypeIndependentStudy,
	'B': SectionTypeLab,
	'L': SectionTypeLecture,
	'C': SectionTypeRecitation,
	'R': SectionTypeResearch,
	'O': SectionTypeOnline,
}

func (s SectionType) String() string {
	name, ok := sectionTypeNames[s]
	if !ok {
		return fmt.Sprintf("SectionType(%q)", string(s))
	}
	return name
}

func ParseSectionType(name string) (SectionType, error) {
	s, ok := sectionTypesByName[normalizeKey(name)]
	if !ok {
		return "", &InvalidParameterError{
			Name:   "section type",
			Value:  name,
			Reason: "expected one of: all, independent-study, lab, lecture, recitation, research, online",
		}
	}
	return s, nil
}

// Pathway is the Pathways/CLE general-education designation.
type Pathway string

const (
	PathwayAll    Pathway = "AR%"
	PathwayCLE1   Pathway = "AR01"
	PathwayCLE2   Pathway = "AR02"
	PathwayCLE3   Pathway = "AR03"
	PathwayCLE4   Pathway = "AR04"
	PathwayCLE5   Pathway = "AR05"
	PathwayCLE6   Pathway = "AR06"
	PathwayCLE7   Pathway = "AR07"
	PathwayPath1A Pathway = "G01A"
	PathwayPath1F Pathway = "G01F"
	PathwayPath2  Pathway = "G02"
	PathwayPath3  Pathway = "G03"
	PathwayPath6A Pathway = "G06A"
	PathwayPath6D Pathway = "G06D"
	PathwayPath7  Pathway = "G07"
)

var knownPathways = map[Pathway]bool{
	PathwayAll:    true,
	PathwayCLE1:   true,
	PathwayCLE2:   true,
	PathwayCLE3:   true,
	PathwayCLE4:   true,
	PathwayCLE5:   true,
	PathwayCLE6:   true,
	PathwayCLE7:   true,
	PathwayPath1A: true,
	PathwayPath1F: true,
	PathwayPath2:  true,
	PathwayPath3:  true,
	PathwayPath6A: true,
	PathwayPath6D: true,
	PathwayPath7:  true,
}

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
	Arranged  Day = "Arranged"
)

// letter codes used by the Days column
var daysByLetter = map[string]Day{
	"M":     Monday,
	"T":     Tuesday,
	"W":     Wednesday,
	"R":     Thursday,
	"F":     Friday,
	"S":     Saturday,
	"U":     Sunday,
	"(ARR)": Arranged,
}
