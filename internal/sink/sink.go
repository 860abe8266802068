// Package sink persists extraction results. The engine itself owns no
// serialization format; anything that can take a mention list and a
// frequency table is a valid sink.
package sink

import (
	"github.com/standardbeagle/tickergrep/internal/extract"
	"github.com/standardbeagle/tickergrep/internal/freq"
)

// Sink receives the output of one extraction run.
type Sink interface {
	WriteMentions(mentions []extract.Mention) error
	WriteFrequencies(rows []freq.TickerCount) error
	Close() error
}
