package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadJSONL(t *testing.T) {
	input := strings.Join([]string{
		`{"text": "I love AAPL", "origin": "submission_title", "original_index": "t3_abc"}`,
		`{"text": "buy TSLA", "origin": "comment", "original_index": 42}`,
		``,
		`{"text": "GME to the moon", "origin": "submission_selftext", "original_index": null}`,
	}, "\n")

	items, stats, err := ReadJSONL(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("ReadJSONL failed: %v", err)
	}

	if stats.Items != 3 || stats.Skipped != 0 {
		t.Fatalf("expected 3 items 0 skipped, got %+v", stats)
	}
	if items[0].Origin != OriginSubmissionTitle {
		t.Errorf("origin not preserved: %q", items[0].Origin)
	}
	if items[0].OriginalIndex != "t3_abc" {
		t.Errorf("string identifier not preserved: %q", items[0].OriginalIndex)
	}
	if items[1].OriginalIndex != "42" {
		t.Errorf("numeric identifier should render as string, got %q", items[1].OriginalIndex)
	}
	if items[2].OriginalIndex != "" {
		t.Errorf("null identifier should be empty, got %q", items[2].OriginalIndex)
	}
}

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		`{"text": "fine item", "origin": "comment", "original_index": 1}`,
		`{not json at all`,
		`{"text": 123, "origin": "comment", "original_index": 2}`,
		`{"text": "also fine", "origin": "comment", "original_index": 3}`,
	}, "\n")

	items, stats, err := ReadJSONL(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("malformed lines must not fail the read: %v", err)
	}

	if stats.Items != 2 {
		t.Errorf("expected 2 surviving items, got %d", stats.Items)
	}
	if stats.Skipped != 2 {
		t.Errorf("expected 2 skipped lines, got %d", stats.Skipped)
	}
	if items[0].Text != "fine item" || items[1].Text != "also fine" {
		t.Errorf("wrong surviving items: %+v", items)
	}
}

func TestReadJSONLSkipsOversizedLines(t *testing.T) {
	huge := `{"text": "` + strings.Repeat("x", maxLineBytes) + `", "origin": "comment", "original_index": 1}`
	input := strings.Join([]string{
		`{"text": "before", "origin": "comment", "original_index": 0}`,
		huge,
		`{"text": "after", "origin": "comment", "original_index": 2}`,
	}, "\n")

	items, stats, err := ReadJSONL(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("an oversized line must not abort the read: %v", err)
	}

	if stats.Lines != 3 || stats.Items != 2 || stats.Skipped != 1 {
		t.Errorf("expected 3 lines, 2 items, 1 skipped, got %+v", stats)
	}
	if len(items) != 2 || items[0].Text != "before" || items[1].Text != "after" {
		t.Errorf("surrounding lines must survive: %+v", items)
	}
}

func TestReadJSONLEmptyInput(t *testing.T) {
	items, stats, err := ReadJSONL(strings.NewReader(""), "test")
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if len(items) != 0 || stats.Items != 0 || stats.Skipped != 0 {
		t.Errorf("expected empty result, got %d items %+v", len(items), stats)
	}
}

func TestReadFilesGlobOrder(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; reading must sort by path.
	write := func(name, text string) {
		content := `{"text": "` + text + `", "origin": "comment", "original_index": 0}` + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.jsonl", "second")
	write("a.jsonl", "first")

	items, stats, err := ReadFiles([]string{filepath.Join(dir, "*.jsonl")})
	if err != nil {
		t.Fatalf("ReadFiles failed: %v", err)
	}
	if stats.Items != 2 {
		t.Fatalf("expected 2 items, got %d", stats.Items)
	}
	if items[0].Text != "first" || items[1].Text != "second" {
		t.Errorf("files must be read in sorted path order, got %q then %q", items[0].Text, items[1].Text)
	}
}

func TestReadFilesNoMatches(t *testing.T) {
	_, _, err := ReadFiles([]string{filepath.Join(t.TempDir(), "nothing-*.jsonl")})
	if err == nil {
		t.Fatal("expected an error when no corpus files match")
	}
}
