package tracker

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/grq/tracker/date"
)

// This file reads the two pre-materialized corpora: daily prices and
// dividends, one JSON file per symbol, shelved by first letter.

// DailyQuote holds one corpus day of raw values. All fields remain the
// strings stored in the corpus so snapshots reproduce them byte for byte.
type DailyQuote struct {
	Open             string
	High             string
	Low              string
	Close            string
	AdjustedClose    string
	Volume           string
	DividendAmount   string
	SplitCoefficient string
}

// PriceEntry is the daily price history of one symbol. The date set is
// sparse: weekends and market holidays are absent.
type PriceEntry struct {
	Symbol string
	Daily  map[date.Date]DailyQuote
}

// ReadPriceEntry reads the price corpus file for a symbol.
//
// The corpus document nests the series under awkward keys ("Time Series
// (Daily)", "4. close", ...), and its numeric leaves are strings, though the
// occasional number sneaks in. The entry is extracted with jsonpath and each
// leaf is read tolerantly.
func ReadPriceEntry(paths Paths, symbol string) (*PriceEntry, error) {
	filename := paths.priceFile(symbol)
	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("price corpus entry %q: %w", symbol, ErrNotFound)
		}
		return nil, fmt.Errorf("cannot read price corpus file %q: %w", filename, err)
	}

	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, fmt.Errorf("price corpus file %q is not valid json: %w", filename, ErrParse)
	}

	entry := &PriceEntry{Symbol: symbol, Daily: make(map[date.Date]DailyQuote)}
	if jval, err := jsonpath.Get(`$["Meta Data"]["2. Symbol"]`, jobj); err == nil {
		if s, ok := jval.(string); ok && s != "" {
			entry.Symbol = s
		}
	}

	jval, err := jsonpath.Get(`$["Time Series (Daily)"]`, jobj)
	if err != nil {
		return nil, fmt.Errorf("price corpus file %q has no daily series: %w", filename, ErrParse)
	}
	series, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("price corpus file %q daily series is not an object: %w", filename, ErrParse)
	}

	for on, jday := range series {
		day, err := date.Parse(on)
		if err != nil {
			continue // unparseable dates are dropped
		}
		fields, ok := jday.(map[string]any)
		if !ok {
			continue
		}
		entry.Daily[day] = DailyQuote{
			Open:             leaf(fields, "1. open"),
			High:             leaf(fields, "2. high"),
			Low:              leaf(fields, "3. low"),
			Close:            leaf(fields, "4. close"),
			AdjustedClose:    leaf(fields, "5. adjusted close"),
			Volume:           leaf(fields, "6. volume"),
			DividendAmount:   leaf(fields, "7. dividend amount"),
			SplitCoefficient: leaf(fields, "8. split coefficient"),
		}
	}
	return entry, nil
}

// leaf reads a corpus leaf as its raw string, accepting a stray number.
func leaf(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// DatesInRange returns the corpus dates within the inclusive range whose
// close parses as a finite number, in ascending order.
func (e *PriceEntry) DatesInRange(rng date.Range) []date.Date {
	days := make([]date.Date, 0, len(e.Daily))
	for day, quote := range e.Daily {
		if !rng.Contains(day) {
			continue
		}
		if _, ok := finite(quote.Close); !ok {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// ClosesInRange returns the (date, close) series within the inclusive range.
// Entries with unparseable dates or closes are dropped.
func (e *PriceEntry) ClosesInRange(rng date.Range) *date.History[float64] {
	var closes date.History[float64]
	for _, day := range e.DatesInRange(rng) {
		if v, ok := finite(e.Daily[day].Close); ok {
			closes.Append(day, v)
		}
	}
	return &closes
}

// finite parses s as a finite float64.
func finite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// DividendRecord is one dividend event of a corpus entry.
type DividendRecord struct {
	ExDividendDate  string `json:"ex_dividend_date"`
	DeclarationDate string `json:"declaration_date,omitempty"`
	RecordDate      string `json:"record_date,omitempty"`
	PaymentDate     string `json:"payment_date,omitempty"`
	Amount          string `json:"amount"`
}

// DividendEntry is the dividend history of one symbol.
type DividendEntry struct {
	Symbol  string           `json:"symbol"`
	Records []DividendRecord `json:"data"`
}

// ReadDividendEntry reads the dividend corpus file for a symbol.
func ReadDividendEntry(paths Paths, symbol string) (*DividendEntry, error) {
	filename := paths.dividendFile(symbol)
	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dividend corpus entry %q: %w", symbol, ErrNotFound)
		}
		return nil, fmt.Errorf("cannot read dividend corpus file %q: %w", filename, err)
	}
	var entry DividendEntry
	if err := json.Unmarshal(content, &entry); err != nil {
		return nil, fmt.Errorf("dividend corpus file %q is not valid json: %w", filename, ErrParse)
	}
	return &entry, nil
}

// DividendEvent is a dividend record with its ex-dividend date parsed.
type DividendEvent struct {
	Day    date.Date
	Amount string
}

// EventsInRange returns the dividend events within the inclusive range whose
// amount parses as a finite number, in ascending date order.
func (e *DividendEntry) EventsInRange(rng date.Range) []DividendEvent {
	var events []DividendEvent
	for _, rec := range e.Records {
		day, err := date.Parse(rec.ExDividendDate)
		if err != nil || !rng.Contains(day) {
			continue
		}
		if _, ok := finite(rec.Amount); !ok {
			continue
		}
		events = append(events, DividendEvent{Day: day, Amount: rec.Amount})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Day.Before(events[j].Day) })
	return events
}
