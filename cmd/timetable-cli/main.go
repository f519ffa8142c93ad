package main

import (
	"context"
	"vt-timetable/cmd/timetable-cli/commands"
	"vt-timetable/lib/serviceutil"
	"vt-timetable/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "timetable-cli")
	if err == nil {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
