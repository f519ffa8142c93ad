package commands

import (
	"vt-timetable/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(semestersCmd)
}

var semestersCmd = &cobra.Command{
	Use:   "semesters",
	Short: "List the terms the timetable can be searched for.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		terms, err := client.Semesters(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch terms", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Semester", "Year"})
		for _, term := range terms {
			t.AppendRow(table.Row{term.Semester, term.Year})
		}
		t.Render()
	},
}
