package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grq/tracker"
)

type snapshotCmd struct {
	date string
}

func (*snapshotCmd) Name() string { return "snapshot" }
func (*snapshotCmd) Synopsis() string {
	return "rewrite the price and dividend snapshot CSVs of one score"
}
func (*snapshotCmd) Usage() string {
	return `grqt snapshot -d <date>

  Rewrites the price and dividend snapshot CSVs for the score published on
  the given date, without touching the index metrics.
`
}

func (p *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Score date (YYYY-MM-DD). Required.")
}

func (p *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.date == "" {
		fmt.Fprintln(os.Stderr, "the -d flag is required")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	paths := AppPaths()
	scorePath := paths.ScoreFile(day)
	records, err := tracker.ReadScoreFile(scorePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tickers := tracker.Tickers(records)
	if err := tracker.WritePriceSnapshot(paths, scorePath, tickers, day); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := tracker.WriteDividendSnapshot(paths, scorePath, tickers, day); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s and %s\n", tracker.PriceSnapshotPath(scorePath), tracker.DividendSnapshotPath(scorePath))
	return subcommands.ExitSuccess
}
