package commands

import (
	"vt-timetable/lib/scrapers/timetable"
	"vt-timetable/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var subjectsMatch *string

func init() {
	subjectsMatch = subjectsCmd.Flags().String("match", "", "Rank subjects by similarity to this query.")
	rootCmd.AddCommand(subjectsCmd)
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects [--match <query>]",
	Short: "List the subjects the timetable knows about.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		subjects, err := client.Subjects(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch subjects", err)
		}

		if *subjectsMatch != "" {
			subjects = timetable.SuggestSubjects(subjects, *subjectsMatch, 5)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Code", "Name"})
		for _, s := range subjects {
			t.AppendRow(table.Row{s.Code, s.Name})
		}
		t.Render()
	},
}
