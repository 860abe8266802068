package sink

import (
	"encoding/json"
	"io"

	"github.com/standardbeagle/tickergrep/internal/extract"
	"github.com/standardbeagle/tickergrep/internal/freq"
)

// JSONL writes results as one JSON object per line, for piping into
// other tooling. It does not own the writers; Close is a no-op.
type JSONL struct {
	Mentions    io.Writer
	Frequencies io.Writer
}

// mentionRecord is the wire shape of one mention row.
type mentionRecord struct {
	Ticker        string `json:"ticker"`
	CompanyName   string `json:"company_name"`
	OriginalWord  string `json:"original_word"`
	MatchType     string `json:"match_type"`
	MatchScore    int    `json:"match_score"`
	Text          string `json:"text"`
	TextIndex     int    `json:"text_index"`
	Origin        string `json:"origin"`
	OriginalIndex string `json:"original_index"`
}

type frequencyRecord struct {
	Ticker    string `json:"ticker"`
	Frequency int    `json:"frequency"`
}

// WriteMentions streams the mention list in order.
func (j *JSONL) WriteMentions(mentions []extract.Mention) error {
	enc := json.NewEncoder(j.Mentions)
	for _, m := range mentions {
		rec := mentionRecord{
			Ticker:        m.Ticker,
			CompanyName:   m.CompanyName,
			OriginalWord:  m.OriginalWord,
			MatchType:     string(m.MatchType),
			MatchScore:    m.MatchScore,
			Text:          m.Text,
			TextIndex:     m.TextIndex,
			Origin:        string(m.Origin),
			OriginalIndex: m.OriginalIndex,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteFrequencies streams the frequency rows in order.
func (j *JSONL) WriteFrequencies(rows []freq.TickerCount) error {
	enc := json.NewEncoder(j.Frequencies)
	for _, row := range rows {
		if err := enc.Encode(frequencyRecord{Ticker: row.Ticker, Frequency: row.Count}); err != nil {
			return err
		}
	}
	return nil
}

// Close implements Sink.
func (j *JSONL) Close() error {
	return nil
}
