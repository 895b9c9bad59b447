package tracker

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/grq/tracker/date"
)

// Paths holds the process-wide root directories. It is threaded explicitly
// through the readers and the batch driver; there are no hidden globals.
type Paths struct {
	Docs         string // docs tree carrying scores/index.json and the score files
	PriceRoot    string // price corpus root, shelved under <PriceRoot>/data
	DividendRoot string // dividend corpus root, shelved under <DividendRoot>/data
}

// ScoresDir returns the directory holding the index and the score tree.
func (p Paths) ScoresDir() string { return filepath.Join(p.Docs, "scores") }

// IndexFile returns the path of the rolling index.
func (p Paths) IndexFile() string { return filepath.Join(p.ScoresDir(), "index.json") }

// ScoreFile returns the score file path for a date, laid out as
// <docs>/scores/<YYYY>/<MonthName>/<D>.tsv with no leading zero on the day.
func (p Paths) ScoreFile(day date.Date) string {
	return filepath.Join(p.ScoresDir(),
		strconv.Itoa(day.Year()),
		day.Month().String(),
		fmt.Sprintf("%d.tsv", day.Day()))
}

// priceFile returns the shelved corpus path for a symbol's daily prices.
func (p Paths) priceFile(symbol string) string {
	return filepath.Join(p.PriceRoot, "data", shelfLetter(symbol), symbol+".json")
}

// dividendFile returns the shelved corpus path for a symbol's dividends.
func (p Paths) dividendFile(symbol string) string {
	return filepath.Join(p.DividendRoot, "data", shelfLetter(symbol), symbol+".json")
}
