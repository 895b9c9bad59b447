package tracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/grq/tracker/date"
	"github.com/rs/zerolog/log"
)

// SnapshotDays is the corpus window materialized per score, wider than the
// 90-day analysis window so downstream consumers keep the extra history.
const SnapshotDays = 180

// PriceSnapshotPath returns the sibling path of a score file where its price
// snapshot is written (".tsv" replaced by ".csv").
func PriceSnapshotPath(scorePath string) string {
	return strings.TrimSuffix(scorePath, ".tsv") + ".csv"
}

// DividendSnapshotPath returns the sibling path of a score file where its
// dividend snapshot is written (".tsv" replaced by "-dividends.csv").
func DividendSnapshotPath(scorePath string) string {
	return strings.TrimSuffix(scorePath, ".tsv") + "-dividends.csv"
}

// snapshotRange returns the inclusive corpus window for a score date.
func snapshotRange(day date.Date) date.Range {
	return date.NewRange(day, day.Add(SnapshotDays))
}

// WritePriceSnapshot materializes the long-form price snapshot for one score:
// one row per (ticker, corpus date) within [day, day+180d], grouped by ticker
// in score order and ascending by date within each group. Corpus values are
// passed through as raw strings. The file is replaced whole; a missing corpus
// entry never aborts the snapshot, the ticker simply contributes no rows.
func WritePriceSnapshot(paths Paths, scorePath string, tickers []string, day date.Date) error {
	rows := [][]string{{"date", "ticker", "high", "low", "open", "close", "split_coefficient"}}
	rng := snapshotRange(day)

	for _, ticker := range tickers {
		entry, err := ReadPriceEntry(paths, SymbolFromTicker(ticker))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				log.Debug().Str("ticker", ticker).Msg("no price corpus entry, skipping")
			} else {
				log.Warn().Str("ticker", ticker).Err(err).Msg("unreadable price corpus entry, skipping")
			}
			continue
		}
		for _, on := range entry.DatesInRange(rng) {
			quote := entry.Daily[on]
			rows = append(rows, []string{
				on.String(), ticker,
				quote.High, quote.Low, quote.Open, quote.Close,
				quote.SplitCoefficient,
			})
		}
	}
	return writeCSV(PriceSnapshotPath(scorePath), rows)
}

// WriteDividendSnapshot materializes the long-form dividend snapshot for one
// score: one row per dividend event within [day, day+180d], per ticker in
// score order. Rows carry the full original ticker.
func WriteDividendSnapshot(paths Paths, scorePath string, tickers []string, day date.Date) error {
	rows := [][]string{{"date", "symbol", "amount"}}
	rng := snapshotRange(day)

	for _, ticker := range tickers {
		entry, err := ReadDividendEntry(paths, SymbolFromTicker(ticker))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				log.Debug().Str("ticker", ticker).Msg("no dividend corpus entry, skipping")
			} else {
				log.Warn().Str("ticker", ticker).Err(err).Msg("unreadable dividend corpus entry, skipping")
			}
			continue
		}
		for _, event := range entry.EventsInRange(rng) {
			rows = append(rows, []string{event.Day.String(), ticker, event.Amount})
		}
	}
	return writeCSV(DividendSnapshotPath(scorePath), rows)
}

// writeCSV replaces filename with the given rows.
func writeCSV(filename string, rows [][]string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create snapshot file %q: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("cannot write snapshot file %q: %w", filename, err)
	}
	w.Flush()
	return w.Error()
}
