package tracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/grq/tracker/date"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AnalysisDays is the return horizon of the performance engine.
const AnalysisDays = 90

// yearDays is the Julian year length used to annualize the 90-day return.
const yearDays = 365.25

// StockPerformance is the computed 90-day performance of one stock of a score.
type StockPerformance struct {
	Ticker        string
	BuyPrice      float64
	TargetPrice   float64
	CurrentPrice  float64
	CurrentDate   date.Date // date of the chosen current price
	PriceGainLoss Percent   // damped in projected mode
	Dividends     float64   // total dividends per share over the analysis window
	TotalReturn   Percent
}

// PortfolioPerformance aggregates the per-stock performances of one score.
//
// TotalStocks counts the stocks listed in the score file; the mean is taken
// over the stocks with complete data only.
type PortfolioPerformance struct {
	ScoreDate             date.Date
	TotalStocks           int
	EffectiveDays         int // actual market days annualized against, capped at 90
	Performance90Day      Percent
	PerformanceAnnualized Percent
	Projected             bool
	Individual            []StockPerformance
}

// ComputePerformance computes the portfolio performance for the score at
// scorePath published on day: measured when the score is at least 90 days
// old as of today, projected otherwise.
func ComputePerformance(paths Paths, scorePath string, day, today date.Date) (*PortfolioPerformance, error) {
	if today.Sub(day) >= AnalysisDays {
		return MeasurePerformance(paths, scorePath, day, today)
	}
	return ProjectPerformance(paths, scorePath, day, today)
}

// MeasurePerformance computes the measured 90-day performance of a score at
// least 90 days old. Prices come from the score's price snapshot; dividends
// from the dividend corpus.
func MeasurePerformance(paths Paths, scorePath string, day, today date.Date) (*PortfolioPerformance, error) {
	if today.Sub(day) < AnalysisDays {
		return nil, fmt.Errorf("score %s is only %d days old, cannot measure a %d-day return: %w",
			day, today.Sub(day), AnalysisDays, ErrEngine)
	}
	return computePerformance(paths, scorePath, day, day.Add(AnalysisDays), false)
}

// ProjectPerformance computes the projected 90-day performance of a score
// younger than 90 days: the trajectory observed so far is extrapolated
// linearly to 90 days, damped by elapsed market days and clamped.
func ProjectPerformance(paths Paths, scorePath string, day, today date.Date) (*PortfolioPerformance, error) {
	if today.Sub(day) >= AnalysisDays {
		return nil, fmt.Errorf("score %s is already %d days old, projection only applies before day %d: %w",
			day, today.Sub(day), AnalysisDays, ErrEngine)
	}
	return computePerformance(paths, scorePath, day, today, true)
}

// computePerformance is the shared engine. horizon is the last date eligible
// as a current price: day+90 when measured, today when projected.
func computePerformance(paths Paths, scorePath string, day, horizon date.Date, projected bool) (*PortfolioPerformance, error) {
	records, err := ReadScoreFile(scorePath)
	if err != nil {
		return nil, err
	}
	byTicker, err := loadPriceSnapshot(PriceSnapshotPath(scorePath))
	if err != nil {
		return nil, err
	}
	dividendWindow := date.NewRange(day, day.Add(AnalysisDays))

	perf := &PortfolioPerformance{
		ScoreDate:   day,
		TotalStocks: len(records),
		Projected:   projected,
	}

	latestIncluded := day
	for _, rec := range records {
		prices, ok := byTicker[rec.Ticker]
		if !ok {
			log.Debug().Str("ticker", rec.Ticker).Msg("no snapshot prices, skipping stock")
			continue
		}
		_, buy, ok := prices.OnOrAfter(day)
		if !ok || buy <= 0 {
			log.Debug().Str("ticker", rec.Ticker).Msg("no buy price, skipping stock")
			continue
		}
		currentDay, current, ok := prices.AsOf(horizon)
		if !ok {
			log.Debug().Str("ticker", rec.Ticker).Msg("no current price, skipping stock")
			continue
		}

		gain := Percent((current - buy) / buy * 100)
		if projected {
			gain, ok = projectGain(gain, currentDay.Sub(day))
			if !ok {
				log.Debug().Str("ticker", rec.Ticker).Msg("no elapsed trajectory, skipping stock")
				continue
			}
		}

		dividends := dividendsTotal(paths, rec.Ticker, dividendWindow)
		sp := StockPerformance{
			Ticker:        rec.Ticker,
			BuyPrice:      buy,
			CurrentPrice:  current,
			CurrentDate:   currentDay,
			PriceGainLoss: gain,
			Dividends:     dividends,
			TotalReturn:   gain + Percent(dividends/buy*100),
		}
		if rec.Target != nil {
			sp.TargetPrice = rec.Target.AsFloat()
		}
		perf.Individual = append(perf.Individual, sp)

		if currentDay.After(latestIncluded) {
			latestIncluded = currentDay
		}
	}

	perf.EffectiveDays = min(AnalysisDays, latestIncluded.Sub(day))
	perf.Performance90Day = meanTotalReturn(perf.Individual)
	perf.PerformanceAnnualized = annualize(perf.Performance90Day, perf.EffectiveDays)
	return perf, nil
}

// projectGain extrapolates the gain observed after m elapsed days to the
// 90-day horizon, damped by how much of the horizon has been observed and
// clamped to [-100, 200]. Without a strictly positive m there is no
// trajectory to project.
func projectGain(observed Percent, m int) (Percent, bool) {
	if m <= 0 {
		return 0, false
	}
	projected := float64(observed) / float64(m) * AnalysisDays

	var factor float64
	switch {
	case m < 30:
		factor = 0.3
	case m < 60:
		factor = 0.5
	default:
		factor = 0.7
	}
	damped := projected * factor

	if damped < -100 {
		damped = -100
	}
	if damped > 200 {
		damped = 200
	}
	return Percent(damped), true
}

// dividendsTotal sums the dividend corpus amounts for a ticker within the
// window. An absent corpus entry contributes 0, not an error.
func dividendsTotal(paths Paths, ticker string, window date.Range) float64 {
	entry, err := ReadDividendEntry(paths, SymbolFromTicker(ticker))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Str("ticker", ticker).Err(err).Msg("unreadable dividend corpus entry, assuming no dividends")
		}
		return 0
	}
	sum := decimal.Zero
	for _, event := range entry.EventsInRange(window) {
		amount, err := decimal.NewFromString(event.Amount)
		if err != nil {
			continue
		}
		sum = sum.Add(amount)
	}
	return sum.InexactFloat64()
}

// meanTotalReturn averages the total return over the kept stocks, 0 when empty.
func meanTotalReturn(perfs []StockPerformance) Percent {
	if len(perfs) == 0 {
		return 0
	}
	var sum float64
	for _, p := range perfs {
		sum += float64(p.TotalReturn)
	}
	return Percent(sum / float64(len(perfs)))
}

// annualize compounds a return over effectiveDays to a Julian year. Using the
// actual elapsed market days instead of a nominal 90 avoids understating
// short-horizon rates when market data is sparse.
func annualize(r Percent, effectiveDays int) Percent {
	if r == 0 || effectiveDays <= 0 {
		return 0
	}
	return Percent((math.Pow(1+float64(r)/100, yearDays/float64(effectiveDays)) - 1) * 100)
}

// loadPriceSnapshot re-indexes a price snapshot CSV into per-ticker close
// histories. Rows whose close does not parse as a positive finite number are
// dropped.
func loadPriceSnapshot(filename string) (map[string]*date.History[float64], error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("price snapshot %q: %w", filename, ErrNotFound)
		}
		return nil, fmt.Errorf("cannot open price snapshot %q: %w", filename, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read price snapshot %q: %w", filename, err)
	}

	byTicker := make(map[string]*date.History[float64])
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue // header or short row
		}
		day, err := date.Parse(row[0])
		if err != nil {
			continue
		}
		close, ok := finite(row[5])
		if !ok || close <= 0 {
			continue
		}
		ticker := row[1]
		prices, exists := byTicker[ticker]
		if !exists {
			prices = &date.History[float64]{}
			byTicker[ticker] = prices
		}
		prices.Append(day, close)
	}
	return byTicker, nil
}
