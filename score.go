package tracker

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// StockRecord is one row of a score file. Currency cells may carry a leading
// '$', thousands commas and an optional leading '-'; empty cells become nil,
// not zeros.
type StockRecord struct {
	Ticker            string // verbatim, exchange prefix retained
	Score             float64
	Target            *Money
	ExDividendDate    string // free-form, not parsed by this system
	DividendPerShare  *Money
	Notes             string
	IntrinsicBasic    *Money
	IntrinsicAdjusted *Money
}

// score file column headers, case-exact.
const (
	colStock             = "Stock"
	colScore             = "Score"
	colTarget            = "Target"
	colExDividendDate    = "ExDividendDate"
	colDividendPerShare  = "DividendPerShare"
	colNotes             = "Notes"
	colIntrinsicBasic    = "intrinsicValuePerShareBasic"
	colIntrinsicAdjusted = "intrinsicValuePerShareAdjusted"
)

// ReadScoreFile parses a tab-separated score file with a header row.
//
// Malformed rows are reported, dropped and never abort the read; only an
// unreadable file or a header missing the Stock column fails.
func ReadScoreFile(path string) ([]StockRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("score file %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("cannot open score file %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read score file %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("score file %q has no header row: %w", path, ErrParse)
	}

	// Map the fixed, case-exact headers to their position in this file.
	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[name] = i
	}
	if _, ok := cols[colStock]; !ok {
		return nil, fmt.Errorf("score file %q is missing the %q column: %w", path, colStock, ErrParse)
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []StockRecord
	for n, row := range rows[1:] {
		rec, err := parseScoreRow(row, cell)
		if err != nil {
			log.Warn().Str("file", path).Int("row", n+2).Err(err).Msg("dropping malformed score row")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseScoreRow salvages one data row into a StockRecord.
func parseScoreRow(row []string, cell func([]string, string) string) (StockRecord, error) {
	rec := StockRecord{
		Ticker:         cell(row, colStock),
		ExDividendDate: cell(row, colExDividendDate),
		Notes:          cell(row, colNotes),
	}
	if err := ValidateTicker(rec.Ticker); err != nil {
		return rec, err
	}

	if s := cell(row, colScore); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rec, fmt.Errorf("invalid score %q: %w", s, ErrParse)
		}
		rec.Score = v
	}

	var err error
	if rec.Target, err = optionalMoney(cell(row, colTarget)); err != nil {
		return rec, err
	}
	if rec.DividendPerShare, err = optionalMoney(cell(row, colDividendPerShare)); err != nil {
		return rec, err
	}
	if rec.IntrinsicBasic, err = optionalMoney(cell(row, colIntrinsicBasic)); err != nil {
		return rec, err
	}
	if rec.IntrinsicAdjusted, err = optionalMoney(cell(row, colIntrinsicAdjusted)); err != nil {
		return rec, err
	}
	return rec, nil
}

// optionalMoney parses a currency cell, mapping the empty cell to absent.
func optionalMoney(s string) (*Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := ParseMoney(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Tickers returns the ticker column of the records, in file order.
func Tickers(records []StockRecord) []string {
	tickers := make([]string, 0, len(records))
	for _, rec := range records {
		tickers = append(tickers, rec.Ticker)
	}
	return tickers
}

// AverageScore returns the mean score of the records, or 0 when empty.
func AverageScore(records []StockRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range records {
		sum += rec.Score
	}
	return sum / float64(len(records))
}
