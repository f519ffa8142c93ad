package commands

import (
	"fmt"
	"vt-timetable/lib/scrapers/timetable"
	"vt-timetable/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var crnFlags struct {
	year     string
	semester string
}

func init() {
	crnCmd.Flags().StringVar(&crnFlags.year, "year", "", "The year to search, e.g. 2025.")
	crnCmd.Flags().StringVar(&crnFlags.semester, "semester", "", "One of: spring, summer, fall, winter.")
	crnCmd.MarkFlagRequired("year")
	crnCmd.MarkFlagRequired("semester")

	rootCmd.AddCommand(crnCmd)
}

var crnCmd = &cobra.Command{
	Use:   "crn <crn> --year <year> --semester <semester>",
	Short: "Look up a single section by its course reference number.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		semester, err := timetable.ParseSemester(crnFlags.semester)
		if err != nil {
			serviceutil.Fatal("invalid --semester", err)
		}

		client := newClient()
		course, err := client.GetCRN(cmd.Context(), crnFlags.year, semester, args[0])
		if err != nil {
			serviceutil.Fatal("lookup failed", err)
		}

		t := newTable()
		t.AppendRows([]table.Row{
			{"CRN", course.CRN},
			{"Course", fmt.Sprintf("%s-%s", course.Subject, course.Code)},
			{"Title", course.Title},
			{"Term", fmt.Sprintf("%s %s", course.Semester, course.Year)},
			{"Type", course.SectionType},
			{"Modality", course.Modality},
			{"Credit Hours", course.CreditHours},
			{"Capacity", formatCount(course.Capacity)},
			{"Enrollment", formatCount(course.Enrollment)},
			{"Waitlist", formatCount(course.Waitlist)},
			{"Instructor", course.Instructor},
			{"Schedule", formatSchedule(course)},
			{"Open Seats", course.HasOpenSeats()},
		})
		t.Render()
	},
}
