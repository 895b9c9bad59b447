// Package cmd implements the CLI application to track score performance.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/grq/tracker"
	"github.com/grq/tracker/date"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "scores")
	c.Register(&performanceCmd{}, "scores")
	c.Register(&snapshotCmd{}, "scores")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	docsPath     *string
	pricePath    *string
	dividendPath *string
	verbose      bool
)

func init() {
	// A .env file can carry the corpus roots; flags still win.
	_ = godotenv.Load()

	docsPath = flag.String("docs-path", envOr("GRQ_DOCS_PATH", "docs"),
		"Path to the docs tree containing scores/index.json and the score files")
	pricePath = flag.String("price-path", envOr("GRQ_PRICE_ROOT", "stock-data"),
		"Path to the price corpus root")
	dividendPath = flag.String("dividend-path", envOr("GRQ_DIVIDEND_ROOT", "dividend-data"),
		"Path to the dividend corpus root")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging (shorthand)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AppPaths returns the corpus and docs roots selected by flags and environment.
func AppPaths() tracker.Paths {
	return tracker.Paths{
		Docs:         *docsPath,
		PriceRoot:    *pricePath,
		DividendRoot: *dividendPath,
	}
}

// SetupLogging configures the global logger. Must run after flag.Parse.
func SetupLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// parseDay parses a user-supplied ISO date argument.
func parseDay(s string) (date.Date, error) {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, tracker.ErrInvalidArgument)
	}
	return d, nil
}
