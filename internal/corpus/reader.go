package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/tickergrep/internal/debug"
)

// ReadStats summarizes one reading pass. Skipped lines are recoverable:
// they are counted, logged when debug output is on, and never abort the
// read.
type ReadStats struct {
	Lines   int
	Items   int
	Skipped int
}

// jsonlRecord is the wire shape of one corpus line. Text stays raw so a
// non-string value is detected (and the line skipped) instead of failing
// the whole file.
type jsonlRecord struct {
	Text          json.RawMessage `json:"text"`
	Origin        string          `json:"origin"`
	OriginalIndex json.RawMessage `json:"original_index"`
}

// maxLineBytes caps how much of a single corpus line is buffered.
// Longer lines are treated like any other malformed item: skipped and
// counted rather than aborting the read.
const maxLineBytes = 4 * 1024 * 1024

// ReadJSONL reads corpus items from one-JSON-object-per-line input.
// Malformed lines (bad JSON, non-string text, oversized) are skipped
// and counted.
func ReadJSONL(r io.Reader, source string) ([]TextItem, ReadStats, error) {
	var items []TextItem
	var stats ReadStats

	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, tooLong, err := readLine(br, maxLineBytes)
		if err != nil && err != io.EOF {
			return nil, stats, fmt.Errorf("failed to read %s: %w", source, err)
		}
		atEOF := err == io.EOF
		if atEOF && line == "" && !tooLong {
			break
		}
		stats.Lines++

		if tooLong {
			stats.Skipped++
			debug.Log("CORPUS", "%s line %d: skipping oversized line\n", source, stats.Lines)
			if atEOF {
				break
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			var rec jsonlRecord
			if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
				stats.Skipped++
				debug.Log("CORPUS", "%s line %d: skipping malformed JSON: %v\n", source, stats.Lines, err)
			} else if text, ok := textString(rec.Text); !ok {
				stats.Skipped++
				debug.Log("CORPUS", "%s line %d: skipping item with non-string text\n", source, stats.Lines)
			} else {
				items = append(items, TextItem{
					Text:          text,
					Origin:        Origin(rec.Origin),
					OriginalIndex: rawToString(rec.OriginalIndex),
				})
				stats.Items++
			}
		}
		if atEOF {
			break
		}
	}

	return items, stats, nil
}

// readLine reads one newline-terminated line, discarding its contents
// once they exceed limit bytes. The returned error is io.EOF on the
// final line.
func readLine(br *bufio.Reader, limit int) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > limit {
				tooLong = true
				buf = nil
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return string(buf), tooLong, err
	}
}

// textString decodes the raw text field, rejecting non-string values.
func textString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// ReadFiles expands doublestar glob patterns and reads every matching
// JSONL file in sorted path order, so corpus order (and therefore
// text_index assignment) is deterministic across runs.
func ReadFiles(patterns []string) ([]TextItem, ReadStats, error) {
	var paths []string
	seen := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, ReadStats{}, fmt.Errorf("invalid corpus pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; !dup {
				seen[m] = struct{}{}
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, ReadStats{}, fmt.Errorf("no corpus files match %v", patterns)
	}

	var items []TextItem
	var stats ReadStats
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to open corpus file: %w", err)
		}
		fileItems, fileStats, err := ReadJSONL(f, path)
		f.Close()
		if err != nil {
			return nil, stats, err
		}
		items = append(items, fileItems...)
		stats.Lines += fileStats.Lines
		stats.Items += fileStats.Items
		stats.Skipped += fileStats.Skipped
	}

	return items, stats, nil
}

// rawToString renders an opaque identifier as a string regardless of its
// JSON type (number, string, null).
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}
