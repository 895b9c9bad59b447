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

type updateCmd struct {
	processAll           bool
	calculatePerformance bool
	performanceOnly      bool
	date                 string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "generate snapshots and performance metrics for the indexed score files"
}
func (*updateCmd) Usage() string {
	return `grqt update [-process-all] [-performance-only] [-calculate-performance] [-d <date>]

  Runs the pipeline over the score files selected from the index: price and
  dividend snapshot CSVs, 90-day portfolio performance, and index metric
  patch. By default only scores published within the last 180 days are
  reprocessed. With -d, processes that single score and prints its report.
`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.processAll, "process-all", false, "Process all score files, disabling the 180-day recency filter.")
	f.BoolVar(&p.calculatePerformance, "calculate-performance", false, "Restrict the batch to the metric step for every selected score.")
	f.BoolVar(&p.performanceOnly, "performance-only", false, "Skip snapshot generation, compute metrics only.")
	f.StringVar(&p.date, "d", "", "Process the single score published on this date (YYYY-MM-DD).")
}

func (p *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths := AppPaths()

	if p.date != "" {
		day, err := parseDay(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		perf, err := tracker.UpdateScore(paths, day, p.performanceOnly || p.calculatePerformance)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.PerformanceMarkdown(perf))
		return subcommands.ExitSuccess
	}

	sum, err := tracker.UpdateScores(paths, tracker.UpdateOptions{
		ProcessAll:           p.processAll,
		PerformanceOnly:      p.performanceOnly,
		CalculatePerformance: p.calculatePerformance,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Per-score failures are counted, not fatal.
	fmt.Printf("Processed %d/%d score files (%d failed)\n", sum.Processed, sum.Selected, sum.Failed)
	return subcommands.ExitSuccess
}
