package tracker

import (
	"fmt"
	"path/filepath"

	"github.com/grq/tracker/date"
	"github.com/rs/zerolog/log"
)

// RecencyDays is the default batch window: only scores published within the
// last 180 days are reprocessed.
const RecencyDays = 180

// UpdateOptions configures a batch run.
type UpdateOptions struct {
	ProcessAll           bool // disable the recency window
	PerformanceOnly      bool // skip snapshot generation, compute metrics only
	CalculatePerformance bool // restrict the batch to the metric step for every selected score
}

// UpdateSummary reports the outcome of a batch run.
type UpdateSummary struct {
	Selected  int
	Processed int
	Failed    int
}

// UpdateScores runs the pipeline over all index entries selected by the
// recency window, in index order: tickers, price snapshot, dividend snapshot,
// performance, index patch. A failure in one score is logged, counted and
// skipped; the batch continues. Only a missing or unreadable index is fatal.
//
// The index is re-read immediately before each write, so a run left partially
// complete by an earlier failure does not discard previously written metrics.
// The read-modify-write is not atomic across processes; callers must
// serialize runs externally.
func UpdateScores(paths Paths, opts UpdateOptions) (UpdateSummary, error) {
	var sum UpdateSummary

	ix, err := ReadIndex(paths)
	if err != nil {
		return sum, err
	}
	today := date.Today()
	cutoff := today.Add(-RecencyDays)

	var selected []ScoreEntry
	for _, entry := range ix.Scores {
		if opts.ProcessAll || !entry.Date.Before(cutoff) {
			selected = append(selected, entry)
		}
	}
	sum.Selected = len(selected)
	log.Info().Int("total", len(ix.Scores)).Int("selected", len(selected)).Msg("selected score files to process")

	metricsOnly := opts.PerformanceOnly || opts.CalculatePerformance
	for i, entry := range selected {
		log.Info().Int("n", i+1).Int("of", len(selected)).Str("date", entry.Date.String()).Str("file", entry.File).Msg("processing score")
		if err := updateScore(paths, entry, metricsOnly, today); err != nil {
			log.Error().Str("date", entry.Date.String()).Err(err).Msg("score failed, continuing")
			sum.Failed++
			continue
		}
		sum.Processed++
	}

	log.Info().Int("processed", sum.Processed).Int("failed", sum.Failed).Msg("batch completed")
	return sum, nil
}

// updateScore runs the per-score pipeline for one index entry.
func updateScore(paths Paths, entry ScoreEntry, performanceOnly bool, today date.Date) error {
	scorePath := filepath.Join(paths.ScoresDir(), filepath.FromSlash(entry.File))

	records, err := ReadScoreFile(scorePath)
	if err != nil {
		return err
	}
	log.Debug().Int("stocks", len(records)).Float64("average_score", AverageScore(records)).Msg("score file read")

	if !performanceOnly {
		tickers := Tickers(records)
		if err := WritePriceSnapshot(paths, scorePath, tickers, entry.Date); err != nil {
			return err
		}
		if err := WriteDividendSnapshot(paths, scorePath, tickers, entry.Date); err != nil {
			return err
		}
	}

	perf, err := ComputePerformance(paths, scorePath, entry.Date, today)
	if err != nil {
		return err
	}
	return patchIndex(paths, entry.Date, perf)
}

// patchIndex re-reads the index, patches the entry for day, and rewrites it.
func patchIndex(paths Paths, day date.Date, perf *PortfolioPerformance) error {
	ix, err := ReadIndex(paths)
	if err != nil {
		return err
	}
	if !ix.Patch(day, perf) {
		return fmt.Errorf("index has no entry for score date %s: %w", day, ErrNotFound)
	}
	return WriteIndex(paths, ix)
}

// UpdateScore runs the per-score pipeline for a single date: the score path
// is derived from the date, snapshots are written unless performanceOnly,
// metrics are computed (projected when the score is younger than 90 days) and
// patched into the index. The computed performance is returned for display.
func UpdateScore(paths Paths, day date.Date, performanceOnly bool) (*PortfolioPerformance, error) {
	scorePath := paths.ScoreFile(day)
	today := date.Today()

	records, err := ReadScoreFile(scorePath)
	if err != nil {
		return nil, err
	}

	if !performanceOnly {
		tickers := Tickers(records)
		if err := WritePriceSnapshot(paths, scorePath, tickers, day); err != nil {
			return nil, err
		}
		if err := WriteDividendSnapshot(paths, scorePath, tickers, day); err != nil {
			return nil, err
		}
	}

	perf, err := ComputePerformance(paths, scorePath, day, today)
	if err != nil {
		return nil, err
	}
	if err := patchIndex(paths, day, perf); err != nil {
		return nil, err
	}
	return perf, nil
}
