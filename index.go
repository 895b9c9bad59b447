package tracker

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grq/tracker/date"
)

// ScoreEntry is one entry of the rolling scores index. The entry is created
// externally; this system only patches the three metric fields.
type ScoreEntry struct {
	Year  int       `json:"year"`
	Month string    `json:"month"` // English full month name, capitalized
	Day   int       `json:"day"`
	File  string    `json:"file"` // relative to <docs>/scores/
	Date  date.Date `json:"date"`

	Performance90Day      *float64 `json:"performance_90_day,omitempty"`
	PerformanceAnnualized *float64 `json:"performance_annualized,omitempty"`
	TotalStocks           *int     `json:"total_stocks,omitempty"`
}

// Index is the rolling manifest of score entries. Entry order is preserved
// across a read-modify-write cycle.
type Index struct {
	Scores []ScoreEntry `json:"scores"`
}

// ReadIndex reads the rolling index. A missing index is fatal to the batch.
func ReadIndex(paths Paths) (*Index, error) {
	filename := paths.IndexFile()
	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("index %q: %w", filename, ErrNotFound)
		}
		return nil, fmt.Errorf("cannot read index %q: %w", filename, err)
	}
	var ix Index
	if err := json.Unmarshal(content, &ix); err != nil {
		return nil, fmt.Errorf("index %q is not valid json: %w", filename, ErrParse)
	}
	return &ix, nil
}

// Patch sets the metric fields of the entry matching the score date,
// preserving every other field. It reports whether a matching entry exists.
func (ix *Index) Patch(day date.Date, perf *PortfolioPerformance) bool {
	for i := range ix.Scores {
		if ix.Scores[i].Date != day {
			continue
		}
		p90 := float64(perf.Performance90Day)
		pa := float64(perf.PerformanceAnnualized)
		total := perf.TotalStocks
		ix.Scores[i].Performance90Day = &p90
		ix.Scores[i].PerformanceAnnualized = &pa
		ix.Scores[i].TotalStocks = &total
		return true
	}
	return false
}

// WriteIndex rewrites the whole index, pretty-printed.
func WriteIndex(paths Paths, ix *Index) error {
	content, err := json.MarshalIndent(ix, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal index: %w", err)
	}
	filename := paths.IndexFile()
	if err := os.WriteFile(filename, append(content, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write index %q: %w", filename, err)
	}
	return nil
}
