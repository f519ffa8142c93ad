package timetable

// UnknownCount is the sentinel for numeric cells (capacity, enrollment,
// waitlist) that the timetable leaves blank or non-numeric, which
// happens for cross-listed and TBA sections. A missing count means
// "unknown", not zero.
const UnknownCount = -1

type MeetingTime struct {
	Begin    string
	End      string
	Location string
}

// Course is one scheduled section of the timetable. Values are built
// once from a parsed table row and never mutated.
type Course struct {
	Year     string
	Semester Semester

	CRN         string
	Subject     string
	Code        string
	Title       string
	SectionType SectionType
	Modality    Modality
	CreditHours string
	Capacity    int
	Enrollment  int
	Waitlist    int
	Instructor  string

	// Schedule maps each meeting day to its times. Arranged-time
	// sections have an empty schedule.
	Schedule map[Day][]MeetingTime
}

// HasOpenSeats reports whether the section has seats left. When either
// count is unknown this returns false: the caller cannot be told a seat
// exists on the strength of a blank cell.
func (c Course) HasOpenSeats() bool {
	if c.Capacity == UnknownCount || c.Enrollment == UnknownCount {
		return false
	}
	return c.Capacity > c.Enrollment
}

// Subject is a department code/name pair, e.g. {"MATH", "Mathematics"}.
type Subject struct {
	Code string
	Name string
}

// Term is a semester/year pair the timetable can be searched for.
type Term struct {
	Year     string
	Semester Semester
}

func (t Term) String() string {
	return t.Semester.String() + " " + t.Year
}
