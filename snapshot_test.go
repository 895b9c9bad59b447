package tracker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotPaths(t *testing.T) {
	if got := PriceSnapshotPath("scores/2024/November/15.tsv"); got != "scores/2024/November/15.csv" {
		t.Errorf("PriceSnapshotPath() = %q", got)
	}
	if got := DividendSnapshotPath("scores/2024/November/15.tsv"); got != "scores/2024/November/15-dividends.csv" {
		t.Errorf("DividendSnapshotPath() = %q", got)
	}
}

func TestWritePriceSnapshot(t *testing.T) {
	paths := testPaths(t)
	on := day(t, "2024-11-15")

	writePriceCorpus(t, paths, "SEM", map[string]quote{
		"2024-11-14": {high: "15.0", low: "14.7", open: "14.9", close: "14.8000", split: "1.0"}, // day before, excluded
		"2024-11-18": {high: "15.3", low: "14.9", open: "15.0", close: "15.2000", split: "1.0"},
		"2024-11-15": {high: "15.1", low: "14.8", open: "14.9", close: "15.0000", split: "1.0"},
		"2025-05-14": {high: "16.6", low: "16.3", open: "16.4", close: "16.5000", split: "1.0"}, // day+180, included
		"2025-05-15": {high: "16.7", low: "16.4", open: "16.5", close: "16.6000", split: "1.0"}, // day+181, excluded
	})
	writePriceCorpus(t, paths, "AAPL", closesOnly(map[string]string{
		"2024-11-15": "225.00",
	}))

	scorePath := filepath.Join(t.TempDir(), "15.tsv")
	// MISSING has no corpus entry and contributes no rows
	err := WritePriceSnapshot(paths, scorePath, []string{"NYSE:SEM", "NASDAQ:AAPL", "NYSE:MISSING"}, on)
	if err != nil {
		t.Fatalf("WritePriceSnapshot() error: %v", err)
	}

	content, err := os.ReadFile(PriceSnapshotPath(scorePath))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"date,ticker,high,low,open,close,split_coefficient",
		"2024-11-15,NYSE:SEM,15.1,14.8,14.9,15.0000,1.0",
		"2024-11-18,NYSE:SEM,15.3,14.9,15.0,15.2000,1.0",
		"2025-05-14,NYSE:SEM,16.6,16.3,16.4,16.5000,1.0",
		"2024-11-15,NASDAQ:AAPL,225.00,225.00,225.00,225.00,1.0",
	}, "\n") + "\n"
	if string(content) != want {
		t.Errorf("snapshot mismatch:\ngot:\n%swant:\n%s", content, want)
	}

	// the file is replaced whole on rewrite
	if err := WritePriceSnapshot(paths, scorePath, []string{"NASDAQ:AAPL"}, on); err != nil {
		t.Fatal(err)
	}
	content, err = os.ReadFile(PriceSnapshotPath(scorePath))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), "SEM") {
		t.Errorf("rewrite kept stale rows:\n%s", content)
	}
}

func TestWritePriceSnapshotNoTickers(t *testing.T) {
	paths := testPaths(t)
	scorePath := filepath.Join(t.TempDir(), "15.tsv")
	if err := WritePriceSnapshot(paths, scorePath, nil, day(t, "2024-11-15")); err != nil {
		t.Fatalf("WritePriceSnapshot() error: %v", err)
	}
	content, err := os.ReadFile(PriceSnapshotPath(scorePath))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "date,ticker,high,low,open,close,split_coefficient\n" {
		t.Errorf("empty snapshot must still carry the header, got:\n%s", content)
	}
}

func TestWriteDividendSnapshot(t *testing.T) {
	paths := testPaths(t)
	on := day(t, "2024-11-15")

	writeDividendCorpus(t, paths, "SEM", []DividendRecord{
		{ExDividendDate: "2025-01-10", Amount: "0.0900"},
		{ExDividendDate: "2024-11-20", Amount: "0.0900"},
		{ExDividendDate: "2024-08-20", Amount: "0.0900"}, // before the window
		{ExDividendDate: "2025-05-20", Amount: "0.0900"}, // after day+180
	})

	scorePath := filepath.Join(t.TempDir(), "15.tsv")
	err := WriteDividendSnapshot(paths, scorePath, []string{"NYSE:SEM", "NYSE:MISSING"}, on)
	if err != nil {
		t.Fatalf("WriteDividendSnapshot() error: %v", err)
	}

	content, err := os.ReadFile(DividendSnapshotPath(scorePath))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"date,symbol,amount",
		"2024-11-20,NYSE:SEM,0.0900",
		"2025-01-10,NYSE:SEM,0.0900",
	}, "\n") + "\n"
	if string(content) != want {
		t.Errorf("snapshot mismatch:\ngot:\n%swant:\n%s", content, want)
	}
}
