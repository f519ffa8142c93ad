package commands

import (
	"fmt"
	"strconv"
	"strings"
	"vt-timetable/lib/scrapers/timetable"
	"vt-timetable/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchFlags struct {
	year        string
	semester    string
	campus      string
	subject     string
	sectionType string
	code        string
	crn         string
	instructor  string
	modality    string
	openOnly    bool
}

func init() {
	searchCmd.Flags().StringVar(&searchFlags.year, "year", "", "The year to search, e.g. 2025.")
	searchCmd.Flags().StringVar(&searchFlags.semester, "semester", "", "One of: spring, summer, fall, winter.")
	searchCmd.Flags().StringVar(&searchFlags.campus, "campus", "", "One of: blacksburg, virtual.")
	searchCmd.Flags().StringVar(&searchFlags.subject, "subject", "", "Subject code, e.g. MATH.")
	searchCmd.Flags().StringVar(&searchFlags.sectionType, "section-type", "", "One of: independent-study, lab, lecture, recitation, research, online.")
	searchCmd.Flags().StringVar(&searchFlags.code, "code", "", "Course number, e.g. 2114.")
	searchCmd.Flags().StringVar(&searchFlags.crn, "crn", "", "Course reference number.")
	searchCmd.Flags().StringVar(&searchFlags.instructor, "instructor", "", "Filter by instructor name.")
	searchCmd.Flags().StringVar(&searchFlags.modality, "modality", "", "One of: in-person, hybrid, online-sync, online-async.")
	searchCmd.Flags().BoolVar(&searchFlags.openOnly, "open-only", false, "Only list sections with open seats.")
	searchCmd.MarkFlagRequired("year")
	searchCmd.MarkFlagRequired("semester")

	rootCmd.AddCommand(searchCmd)
}

func buildSearchRequest() timetable.SearchRequest {
	semester, err := timetable.ParseSemester(searchFlags.semester)
	if err != nil {
		serviceutil.Fatal("invalid --semester", err)
	}

	req := timetable.SearchRequest{
		Year:       searchFlags.year,
		Semester:   semester,
		Subject:    searchFlags.subject,
		Code:       searchFlags.code,
		CRN:        searchFlags.crn,
		Instructor: searchFlags.instructor,
		OpenOnly:   searchFlags.openOnly,
	}

	if searchFlags.campus != "" {
		req.Campus, err = timetable.ParseCampus(searchFlags.campus)
		if err != nil {
			serviceutil.Fatal("invalid --campus", err)
		}
	}
	if searchFlags.sectionType != "" {
		req.SectionType, err = timetable.ParseSectionType(searchFlags.sectionType)
		if err != nil {
			serviceutil.Fatal("invalid --section-type", err)
		}
	}
	if searchFlags.modality != "" {
		req.Modality, err = timetable.ParseModality(searchFlags.modality)
		if err != nil {
			serviceutil.Fatal("invalid --modality", err)
		}
	}

	return req
}

func formatCount(n int) string {
	if n == timetable.UnknownCount {
		return "?"
	}
	return strconv.Itoa(n)
}

var dayLetters = []struct {
	day    timetable.Day
	letter string
}{
	{timetable.Monday, "M"},
	{timetable.Tuesday, "T"},
	{timetable.Wednesday, "W"},
	{timetable.Thursday, "R"},
	{timetable.Friday, "F"},
	{timetable.Saturday, "S"},
	{timetable.Sunday, "U"},
}

func formatSchedule(course timetable.Course) string {
	var parts []string
	for _, d := range dayLetters {
		for _, m := range course.Schedule[d.day] {
			parts = append(parts, fmt.Sprintf("%s %s-%s %s", d.letter, m.Begin, m.End, m.Location))
		}
	}
	if len(parts) == 0 {
		return "(ARR)"
	}
	return strings.Join(parts, ", ")
}

var searchCmd = &cobra.Command{
	Use:   "search --year <year> --semester <semester> [filters]",
	Short: "Search the timetable for sections matching the given filters.",
	Run: func(cmd *cobra.Command, args []string) {
		req := buildSearchRequest()
		client := newClient()

		courses, err := client.Search(cmd.Context(), req)
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}

		if len(courses) == 0 {
			fmt.Println("No sections found.")
			suggestSubject(cmd, client, req.Subject)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{
			"CRN", "Course", "Title", "Type", "Modality",
			"Cr Hrs", "Cap", "Enrl", "WL", "Instructor", "Schedule",
		})
		for _, c := range courses {
			t.AppendRow(table.Row{
				c.CRN,
				fmt.Sprintf("%s-%s", c.Subject, c.Code),
				c.Title,
				c.SectionType,
				c.Modality,
				c.CreditHours,
				formatCount(c.Capacity),
				formatCount(c.Enrollment),
				formatCount(c.Waitlist),
				c.Instructor,
				formatSchedule(c),
			})
		}
		t.Render()
	},
}

// suggestSubject prints a "did you mean" hint when a subject-filtered
// search comes back empty.
func suggestSubject(cmd *cobra.Command, client *timetable.Client, subject string) {
	if subject == "" {
		return
	}

	subjects, err := client.Subjects(cmd.Context())
	if err != nil {
		return
	}

	suggestions := timetable.SuggestSubjects(subjects, subject, 3)
	if len(suggestions) == 0 {
		return
	}

	var codes []string
	for _, s := range suggestions {
		codes = append(codes, fmt.Sprintf("%s (%s)", s.Code, s.Name))
	}
	fmt.Printf("Did you mean: %s\n", strings.Join(codes, ", "))
}
