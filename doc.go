// Package tracker measures the realized and projected short-term performance
// of published stock score files.
//
// A score file is an immutable, editorially produced TSV listing recommended
// tickers with scores and price targets. For each score file the package:
//   - materializes a per-score price history snapshot (CSV),
//   - materializes a per-score dividend history snapshot (CSV),
//   - computes the 90-day portfolio return and its annualized form, measured
//     when the score is at least 90 days old and projected (damped trajectory
//     extrapolation) when it is younger,
//   - patches the computed metrics into the rolling scores index.
//
// Price and dividend corpora are pre-existing read-only trees on disk, one
// JSON file per symbol shelved by the symbol's first letter. The package never
// fetches live market data and never mutates score files.
//
// This package is the foundational logic for the `grqt` command-line tool.
package tracker
