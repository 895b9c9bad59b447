package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grq/tracker/date"
)

// testPaths returns a Paths rooted in fresh temp directories.
func testPaths(t *testing.T) Paths {
	t.Helper()
	return Paths{
		Docs:         t.TempDir(),
		PriceRoot:    t.TempDir(),
		DividendRoot: t.TempDir(),
	}
}

// writeFile writes content to filename, creating parent directories.
func writeFile(t *testing.T, filename, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// quote is a corpus day fixture; only the fields a test cares about need
// to be set.
type quote struct {
	open, high, low, close, split string
}

// writePriceCorpus writes a corpus price file for symbol with the given
// daily quotes, in the nested document shape the corpus uses.
func writePriceCorpus(t *testing.T, paths Paths, symbol string, daily map[string]quote) {
	t.Helper()
	series := make(map[string]any, len(daily))
	for on, q := range daily {
		series[on] = map[string]any{
			"1. open":              q.open,
			"2. high":              q.high,
			"3. low":               q.low,
			"4. close":             q.close,
			"5. adjusted close":    q.close,
			"6. volume":            "1000",
			"7. dividend amount":   "0.0000",
			"8. split coefficient": q.split,
		}
	}
	doc := map[string]any{
		"Meta Data":           map[string]any{"2. Symbol": symbol},
		"Time Series (Daily)": series,
	}
	content, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, paths.priceFile(symbol), string(content))
}

// closesOnly builds a quote map carrying only closes, for engine tests
// that never look at the other fields.
func closesOnly(closes map[string]string) map[string]quote {
	daily := make(map[string]quote, len(closes))
	for on, c := range closes {
		daily[on] = quote{open: c, high: c, low: c, close: c, split: "1.0"}
	}
	return daily
}

// writeDividendCorpus writes a corpus dividend file for symbol.
func writeDividendCorpus(t *testing.T, paths Paths, symbol string, records []DividendRecord) {
	t.Helper()
	content, err := json.Marshal(DividendEntry{Symbol: symbol, Records: records})
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, paths.dividendFile(symbol), string(content))
}

// day is a parse shorthand for test fixtures.
func day(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
