// Package catalog loads and normalizes the ticker/company reference data
// that mentions are matched against.
//
// A loaded Catalog is read-only: the extractor and its workers share one
// instance without locking.
package catalog

import (
	"fmt"
	"unicode/utf8"

	tgerrors "github.com/standardbeagle/tickergrep/internal/errors"
)

// DefaultMinTickerLength drops tickers too short to match reliably.
// One- and two-letter symbols collide with ordinary words and initials
// far too often to be usable candidates.
const DefaultMinTickerLength = 3

// Entry is one ticker/company pair from the reference data.
type Entry struct {
	Ticker string
	Name   string
}

// Catalog holds the normalized reference data plus the derived lookup
// structures the matcher needs.
type Catalog struct {
	Entries []Entry

	// Parallel candidate lists, in entry order
	Tickers []string
	Names   []string

	// Bidirectional lookup between the two
	TickerToName map[string]string
	NameToTicker map[string]string
}

// Load builds a Catalog from raw ticker/name pairs.
//
// Entries whose ticker is shorter than minTickerLen runes are dropped and
// never become match candidates. A duplicate ticker keeps its first
// occurrence so candidate order stays deterministic. Missing required
// fields fail the whole load; no partial catalog is ever returned.
func Load(entries []Entry, minTickerLen int) (*Catalog, error) {
	if minTickerLen < 1 {
		minTickerLen = DefaultMinTickerLength
	}

	c := &Catalog{
		TickerToName: make(map[string]string, len(entries)),
		NameToTicker: make(map[string]string, len(entries)),
	}

	for i, e := range entries {
		row := i + 1
		if e.Ticker == "" {
			return nil, tgerrors.NewCatalogError("catalog", fmt.Errorf("required field is empty")).
				WithRow(row).WithField("Ticker")
		}
		if e.Name == "" {
			return nil, tgerrors.NewCatalogError("catalog", fmt.Errorf("required field is empty")).
				WithRow(row).WithField("Name")
		}

		if utf8.RuneCountInString(e.Ticker) < minTickerLen {
			continue
		}
		if _, dup := c.TickerToName[e.Ticker]; dup {
			continue
		}

		c.Entries = append(c.Entries, e)
		c.Tickers = append(c.Tickers, e.Ticker)
		c.Names = append(c.Names, e.Name)
		c.TickerToName[e.Ticker] = e.Name
		if _, ok := c.NameToTicker[e.Name]; !ok {
			c.NameToTicker[e.Name] = e.Ticker
		}
	}

	return c, nil
}

// Len returns the number of entries that survived loading.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// NameFor returns the company name for a ticker, or "" if unknown.
func (c *Catalog) NameFor(ticker string) string {
	return c.TickerToName[ticker]
}

// TickerFor returns the ticker for a company name, or "" if unknown.
func (c *Catalog) TickerFor(name string) string {
	return c.NameToTicker[name]
}
