package extract

import (
	"fmt"
	"strconv"

	"github.com/standardbeagle/tickergrep/internal/corpus"
	tgerrors "github.com/standardbeagle/tickergrep/internal/errors"
)

// MatchType distinguishes which candidate list produced a mention.
type MatchType string

const (
	MatchTicker MatchType = "ticker"
	MatchName   MatchType = "name"
)

// Mode selects which candidate lists the extractor matches against.
type Mode string

const (
	ModeTicker Mode = "ticker"
	ModeName   Mode = "name"
	ModeBoth   Mode = "both"
)

// Default acceptance thresholds. Ticker matching runs stricter than
// name matching because tickers are short and close to each other in
// edit distance.
const (
	DefaultTickerThreshold = 90
	DefaultNameThreshold   = 85
)

// Mention is one accepted fuzzy match of a corpus token to a catalog
// entry, with full provenance. Created once, never mutated.
type Mention struct {
	Ticker       string
	CompanyName  string
	OriginalWord string
	MatchType    MatchType
	MatchScore   int // 0..100

	Text          string
	TextIndex     int // 0-based position of the item within the corpus
	Origin        corpus.Origin
	OriginalIndex string
}

// Options configures one extraction run.
type Options struct {
	TickerThreshold int
	NameThreshold   int
	Mode            Mode

	// Exclusions holds tickers never matched as tickers (common-word
	// collisions). Read-only during the run.
	Exclusions map[string]struct{}

	// Workers > 1 splits the corpus across goroutines. Output order is
	// canonical either way.
	Workers int
}

// DefaultOptions returns the standard run configuration.
func DefaultOptions() Options {
	return Options{
		TickerThreshold: DefaultTickerThreshold,
		NameThreshold:   DefaultNameThreshold,
		Mode:            ModeBoth,
		Workers:         1,
	}
}

// Validate checks thresholds and mode. Invalid options are fatal at
// startup, before any item is processed.
func (o Options) Validate() error {
	if o.TickerThreshold < 0 || o.TickerThreshold > 100 {
		return tgerrors.NewConfigError("ticker_threshold", strconv.Itoa(o.TickerThreshold),
			fmt.Errorf("must be between 0 and 100"))
	}
	if o.NameThreshold < 0 || o.NameThreshold > 100 {
		return tgerrors.NewConfigError("name_threshold", strconv.Itoa(o.NameThreshold),
			fmt.Errorf("must be between 0 and 100"))
	}
	switch o.Mode {
	case ModeTicker, ModeName, ModeBoth:
	default:
		return tgerrors.NewConfigError("match_mode", string(o.Mode),
			fmt.Errorf("must be ticker, name, or both"))
	}
	if o.Workers < 0 {
		return tgerrors.NewConfigError("workers", strconv.Itoa(o.Workers),
			fmt.Errorf("must not be negative"))
	}
	return nil
}

// Summary reports what one extraction run did, replacing ambient
// logging: callers decide what to surface.
type Summary struct {
	ItemsProcessed int
	ItemsSkipped   int
	Mentions       int
}
