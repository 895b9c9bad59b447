package renderer

import (
	"github.com/grq/tracker"
)

// Performance is the report view of a computed portfolio performance.
// Prices and percentages are preformatted so the template stays dumb.
type Performance struct {
	Date          string
	Mode          string
	TotalStocks   int
	KeptStocks    int
	EffectiveDays int
	Mean          string
	Annualized    string
	Rows          []PerformanceRow
}

// PerformanceRow is one stock of the performance report.
type PerformanceRow struct {
	Ticker      string
	Buy         string
	Current     string
	Target      string
	GainLoss    string
	Dividends   string
	TotalReturn string
}

// NewPerformance builds the report view for a portfolio performance.
func NewPerformance(perf *tracker.PortfolioPerformance) *Performance {
	mode := "measured"
	if perf.Projected {
		mode = "projected"
	}
	r := &Performance{
		Date:          perf.ScoreDate.String(),
		Mode:          mode,
		TotalStocks:   perf.TotalStocks,
		KeptStocks:    len(perf.Individual),
		EffectiveDays: perf.EffectiveDays,
		Mean:          perf.Performance90Day.SignedString(),
		Annualized:    perf.PerformanceAnnualized.SignedString(),
	}
	for _, sp := range perf.Individual {
		row := PerformanceRow{
			Ticker:      sp.Ticker,
			Buy:         tracker.M(sp.BuyPrice).String(),
			Current:     tracker.M(sp.CurrentPrice).String(),
			Target:      "-",
			GainLoss:    sp.PriceGainLoss.SignedString(),
			Dividends:   tracker.M(sp.Dividends).String(),
			TotalReturn: sp.TotalReturn.SignedString(),
		}
		if sp.TargetPrice != 0 {
			row.Target = tracker.M(sp.TargetPrice).String()
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

// PerformanceMarkdown renders the performance report to a markdown string.
func PerformanceMarkdown(perf *tracker.PortfolioPerformance) string {
	partials := map[string]string{
		"performance_title":   "performance_title.md",
		"performance_summary": "performance_summary.md",
	}
	return renderTemplate("performance", "performance.md", partials, NewPerformance(perf))
}
