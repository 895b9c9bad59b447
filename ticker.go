package tracker

import (
	"fmt"
	"strings"
)

// A ticker is the full identifier as written in a score file, typically
// "EXCHANGE:SYMBOL" (e.g. "NYSE:SEM") or a bare "SYMBOL". The full ticker is
// the join key everywhere; the derived symbol is used only to locate corpus
// files.

// SymbolFromTicker strips the exchange prefix and replaces every '.' with '-'
// so the result is filesystem-safe (e.g. "NYSE:HEI.A" -> "HEI-A").
// It is idempotent and maps the empty string to itself.
func SymbolFromTicker(ticker string) string {
	symbol := ticker
	if _, after, found := strings.Cut(ticker, ":"); found {
		symbol = after
	}
	return strings.ReplaceAll(symbol, ".", "-")
}

// shelfLetter returns the corpus shelf for a symbol: the uppercase first
// character, or "X" for the empty symbol.
func shelfLetter(symbol string) string {
	if symbol == "" {
		return "X"
	}
	return strings.ToUpper(symbol[:1])
}

// ValidateTicker checks the shape of a score file ticker: a non-empty
// alphanumeric identifier of at most 10 characters beyond the optional
// exchange prefix, allowing '.' class suffixes.
func ValidateTicker(ticker string) error {
	symbol := ticker
	if _, after, found := strings.Cut(ticker, ":"); found {
		symbol = after
	}
	if symbol == "" || len(symbol) > 10 {
		return fmt.Errorf("ticker %q: %w", ticker, ErrParse)
	}
	for _, r := range ticker {
		isAlnum := r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
		if !isAlnum && r != '.' && r != ':' {
			return fmt.Errorf("ticker %q: invalid character %q: %w", ticker, r, ErrParse)
		}
	}
	return nil
}
