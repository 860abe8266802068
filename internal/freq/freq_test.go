package freq

import (
	"reflect"
	"testing"

	"github.com/standardbeagle/tickergrep/internal/extract"
)

func mention(ticker string, textIndex int) extract.Mention {
	return extract.Mention{
		Ticker:       ticker,
		OriginalWord: ticker,
		MatchType:    extract.MatchTicker,
		MatchScore:   100,
		TextIndex:    textIndex,
	}
}

func TestAggregateCounts(t *testing.T) {
	mentions := []extract.Mention{
		mention("AAPL", 0),
		mention("TSLA", 0),
		mention("AAPL", 1),
		mention("AAPL", 2),
		mention("GME", 2),
	}

	table := Aggregate(mentions)

	if table.Count("AAPL") != 3 || table.Count("TSLA") != 1 || table.Count("GME") != 1 {
		t.Errorf("wrong counts: %+v", table.Rows())
	}
	if table.Count("MSFT") != 0 {
		t.Error("absent ticker must count 0")
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 distinct tickers, got %d", table.Len())
	}
	if table.Total() != len(mentions) {
		t.Errorf("sum of counts (%d) must equal mention count (%d)", table.Total(), len(mentions))
	}
}

func TestAggregateEmpty(t *testing.T) {
	table := Aggregate(nil)
	if table.Len() != 0 || table.Total() != 0 {
		t.Errorf("empty mention list must yield an empty table, got %+v", table.Rows())
	}
	if len(table.TopN(10)) != 0 {
		t.Error("TopN of an empty table must be empty")
	}
}

func TestAggregateIdempotent(t *testing.T) {
	mentions := []extract.Mention{
		mention("AAPL", 0),
		mention("GME", 1),
		mention("AAPL", 2),
	}

	first := Aggregate(mentions)
	second := Aggregate(mentions)

	if !reflect.DeepEqual(first.Rows(), second.Rows()) {
		t.Error("aggregating the same mention list twice must yield the same table")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	mentions := []extract.Mention{
		mention("GME", 0),
		mention("AAPL", 0),
		mention("TSLA", 1),
		mention("AAPL", 1),
	}

	want := []string{"GME", "AAPL", "TSLA"}
	if got := Aggregate(mentions).Tickers(); !reflect.DeepEqual(got, want) {
		t.Errorf("tickers must keep first-mention order: got %v, want %v", got, want)
	}
}

func TestTopN(t *testing.T) {
	mentions := []extract.Mention{
		mention("GME", 0),
		mention("AAPL", 0),
		mention("AAPL", 1),
		mention("AAPL", 2),
		mention("TSLA", 1),
		mention("TSLA", 2),
		mention("AMC", 3),
	}

	top := Aggregate(mentions).TopN(3)
	want := []TickerCount{
		{Ticker: "AAPL", Count: 3},
		{Ticker: "TSLA", Count: 2},
		{Ticker: "GME", Count: 1}, // ties with AMC; GME was mentioned first
	}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("got %v, want %v", top, want)
	}
}

func TestTopNLargerThanTable(t *testing.T) {
	top := Aggregate([]extract.Mention{mention("AAPL", 0)}).TopN(50)
	if len(top) != 1 {
		t.Errorf("TopN beyond table size must return everything, got %v", top)
	}
}

func TestSummarize(t *testing.T) {
	mentions := []extract.Mention{
		{Ticker: "AAPL", OriginalWord: "AAPL", MatchScore: 100, Text: "AAPL beats earnings", TextIndex: 0},
		{Ticker: "AAPL", OriginalWord: "appl", MatchScore: 75, Text: "appl again", TextIndex: 0},
		{Ticker: "AAPL", OriginalWord: "AAPL", MatchScore: 100, Text: "more AAPL", TextIndex: 2},
		{Ticker: "GME", OriginalWord: "GME", MatchScore: 100, Text: "GME squeeze", TextIndex: 1},
	}
	table := Aggregate(mentions)

	rows := Summarize(mentions, table, 2)
	if len(rows) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(rows))
	}

	aapl := rows[0]
	if aapl.Ticker != "AAPL" || aapl.Count != 3 {
		t.Errorf("unexpected first row: %+v", aapl)
	}
	if aapl.UniqueTexts != 2 {
		t.Errorf("AAPL appears in 2 distinct texts, got %d", aapl.UniqueTexts)
	}
	if aapl.Example.Text != "AAPL beats earnings" {
		t.Errorf("example must be the first mention, got %q", aapl.Example.Text)
	}
}
