package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grq/tracker"
	"github.com/grq/tracker/renderer"
)

type performanceCmd struct {
	date string
}

func (*performanceCmd) Name() string { return "performance" }
func (*performanceCmd) Synopsis() string {
	return "compute and display the 90-day performance of one score"
}
func (*performanceCmd) Usage() string {
	return `grqt performance -d <date>

  Computes the 90-day portfolio performance of the score published on the
  given date from its existing snapshot, patches the index, and renders the
  per-stock report. Scores younger than 90 days get a damped projection.
`
}

func (p *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Score date (YYYY-MM-DD). Required.")
}

func (p *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.date == "" {
		fmt.Fprintln(os.Stderr, "the -d flag is required")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	perf, err := tracker.UpdateScore(AppPaths(), day, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(perf))
	return subcommands.ExitSuccess
}
