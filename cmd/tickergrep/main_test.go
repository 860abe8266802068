package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tickergrep/internal/config"
	"github.com/standardbeagle/tickergrep/internal/sink"
)

func testApp() *cli.App {
	return &cli.App{
		Name: "tickergrep",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: config.DefaultConfigFile},
		},
		Commands: []*cli.Command{extractCommand(), topCommand()},
	}
}

func TestExtractEndToEnd(t *testing.T) {
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "catalog.csv")
	if err := os.WriteFile(catalogPath, []byte(
		"Ticker,Name\nAAPL,Apple Inc\nALL,Allstate\nGME,GameStop Corp\n"), 0644); err != nil {
		t.Fatal(err)
	}

	corpusPath := filepath.Join(dir, "corpus.jsonl")
	corpusContent := `{"text": "I love AAPL and ALL of its products", "origin": "submission_title", "original_index": "t3_a"}
{"text": "gme to the moon", "origin": "comment", "original_index": "t1_b"}
{"text": "AAPL earnings tomorrow", "origin": "comment", "original_index": "t1_c"}
`
	if err := os.WriteFile(corpusPath, []byte(corpusContent), 0644); err != nil {
		t.Fatal(err)
	}

	dbPath := filepath.Join(dir, "results.db")
	err := testApp().Run([]string{
		"tickergrep",
		"-c", filepath.Join(dir, "no-config.toml"),
		"extract",
		"--catalog", catalogPath,
		"--db", dbPath,
		"--corpus", corpusPath,
		"--workers", "1",
	})
	if err != nil {
		t.Fatalf("extract command failed: %v", err)
	}

	store, err := sink.NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	n, err := store.MentionCount()
	if err != nil {
		t.Fatal(err)
	}
	// AAPL twice, GME once; ALL is excluded by the default set.
	if n != 3 {
		t.Errorf("expected 3 stored mentions, got %d", n)
	}

	top, err := store.TopFrequencies(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].Ticker != "AAPL" || top[0].Count != 2 {
		t.Errorf("unexpected frequencies: %+v", top)
	}
}

func TestExtractRequiresCatalog(t *testing.T) {
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "corpus.jsonl")
	if err := os.WriteFile(corpusPath, []byte(`{"text": "hi", "origin": "comment"}`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := testApp().Run([]string{
		"tickergrep",
		"-c", filepath.Join(dir, "no-config.toml"),
		"extract", "--corpus", corpusPath,
	})
	if err == nil {
		t.Fatal("extract without a catalog must fail")
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	// Multi-byte runes at the cut must not be split into garbage bytes.
	s := strings.Repeat("é", 10)
	got := truncate(s, 4)
	if got != "éééé..." {
		t.Errorf("expected 4 runes plus ellipsis, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncated string is not valid UTF-8: %q", got)
	}
	if truncate("short", 60) != "short" {
		t.Error("strings within the limit must pass through unchanged")
	}
}

func TestTopOnEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	err := testApp().Run([]string{
		"tickergrep",
		"-c", filepath.Join(dir, "no-config.toml"),
		"top", "--db", filepath.Join(dir, "empty.db"),
	})
	if err != nil {
		t.Fatalf("top on an empty database must not fail: %v", err)
	}
}
