package freq

import "github.com/standardbeagle/tickergrep/internal/extract"

// SummaryRow describes one of the most-mentioned tickers: how often it
// appeared, across how many distinct texts, and the first mention as a
// concrete example.
type SummaryRow struct {
	Ticker      string
	Count       int
	UniqueTexts int
	Example     extract.Mention
}

// Summarize builds the top-N mention summary from a mention list and
// its frequency table.
func Summarize(mentions []extract.Mention, table *Table, topN int) []SummaryRow {
	rows := make([]SummaryRow, 0, topN)

	for _, tc := range table.TopN(topN) {
		row := SummaryRow{Ticker: tc.Ticker, Count: tc.Count}

		texts := make(map[int]struct{})
		first := true
		for _, m := range mentions {
			if m.Ticker != tc.Ticker {
				continue
			}
			texts[m.TextIndex] = struct{}{}
			if first {
				row.Example = m
				first = false
			}
		}
		row.UniqueTexts = len(texts)
		rows = append(rows, row)
	}

	return rows
}
