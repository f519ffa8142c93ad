package commands

import (
	"context"
	"fmt"
	"os"
	"time"
	"vt-timetable/lib/configutil"
	"vt-timetable/lib/scrapers/timetable"
	"vt-timetable/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl string `json:"base_url"`
	// timeout in seconds
	Timeout int `json:"timeout"`
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "timetable-cli",
	Short: "timetable-cli searches the VT Timetable of Classes from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a timetable client, honoring an optional
// timetable.json5 config for base url and timeout overrides.
func newClient() *timetable.Client {
	opts := timetable.ClientOptions{}

	config, err := configutil.ReadConfig[Config]("timetable.json5")
	if err == nil {
		opts.BaseUrl = config.BaseUrl
		opts.Timeout = time.Duration(config.Timeout) * time.Second
	}

	return timetable.NewClient(opts)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
