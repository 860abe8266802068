// Package freq reduces a mention list to per-ticker frequencies and
// top-N summary views. Aggregation is pure: the table is derived
// entirely from the mention list and recomputed, never patched.
package freq

import (
	"sort"

	"github.com/standardbeagle/tickergrep/internal/extract"
)

// Table maps tickers to mention counts while remembering the order in
// which tickers were first mentioned, so top-N tie-breaking is
// deterministic.
type Table struct {
	counts map[string]int
	order  []string
}

// TickerCount is one row of a frequency view.
type TickerCount struct {
	Ticker string
	Count  int
}

// Aggregate counts mentions per ticker in mention-list order.
func Aggregate(mentions []extract.Mention) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, m := range mentions {
		if _, seen := t.counts[m.Ticker]; !seen {
			t.order = append(t.order, m.Ticker)
		}
		t.counts[m.Ticker]++
	}
	return t
}

// Count returns the mention count for a ticker, 0 if absent.
func (t *Table) Count(ticker string) int {
	return t.counts[ticker]
}

// Len returns the number of distinct tickers mentioned.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts, which always equals the length
// of the mention list the table was built from.
func (t *Table) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Tickers returns the distinct tickers in first-mention order.
func (t *Table) Tickers() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Rows returns every ticker with its count, in first-mention order.
func (t *Table) Rows() []TickerCount {
	rows := make([]TickerCount, 0, len(t.order))
	for _, ticker := range t.order {
		rows = append(rows, TickerCount{Ticker: ticker, Count: t.counts[ticker]})
	}
	return rows
}

// TopN returns the n highest-count tickers, descending by count; equal
// counts keep first-mention order. n larger than the table returns
// everything.
func (t *Table) TopN(n int) []TickerCount {
	rows := t.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
