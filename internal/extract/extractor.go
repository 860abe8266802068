// Package extract orchestrates the mention pipeline: tokenize each
// corpus item, resolve tokens against the catalog with fuzzy matching,
// filter by threshold and exclusion set, and tag every accepted match
// with its provenance.
package extract

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/tickergrep/internal/catalog"
	"github.com/standardbeagle/tickergrep/internal/corpus"
	"github.com/standardbeagle/tickergrep/internal/debug"
	tgerrors "github.com/standardbeagle/tickergrep/internal/errors"
	"github.com/standardbeagle/tickergrep/internal/match"
)

// Extractor runs the mention pipeline over a corpus. The catalog and
// exclusion set are read-only shared state, so one Extractor serves any
// number of runs and any number of workers without locking.
type Extractor struct {
	cat  *catalog.Catalog
	opts Options

	tickerIndex *match.Index
	nameIndex   *match.Index
}

// New validates the options and builds the candidate indexes.
func New(cat *catalog.Catalog, opts Options) (*Extractor, error) {
	if cat == nil {
		return nil, tgerrors.NewCatalogError("catalog", fmt.Errorf("no catalog loaded"))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	e := &Extractor{cat: cat, opts: opts}
	if opts.Mode == ModeTicker || opts.Mode == ModeBoth {
		e.tickerIndex = match.NewIndex(cat.Tickers, opts.TickerThreshold)
	}
	if opts.Mode == ModeName || opts.Mode == ModeBoth {
		e.nameIndex = match.NewIndex(cat.Names, opts.NameThreshold)
	}
	return e, nil
}

// Run extracts mentions from items in corpus order. The returned list is
// in canonical order: ascending text index, then token order within
// each text. Cancellation is honored at item boundaries; a cancelled run
// returns ctx.Err() and no partial results.
func (e *Extractor) Run(ctx context.Context, items []corpus.TextItem) ([]Mention, Summary, error) {
	if e.opts.Workers > 1 && len(items) > 1 {
		return e.runParallel(ctx, items)
	}
	return e.runSequential(ctx, items)
}

func (e *Extractor) runSequential(ctx context.Context, items []corpus.TextItem) ([]Mention, Summary, error) {
	var mentions []Mention
	var summary Summary

	for idx, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, Summary{}, err
		}
		var ok bool
		mentions, ok = e.extractItem(idx, item, mentions)
		if !ok {
			summary.ItemsSkipped++
			continue
		}
		summary.ItemsProcessed++
	}

	summary.Mentions = len(mentions)
	debug.LogExtract("found %d mentions in %d items (%d skipped)\n",
		summary.Mentions, summary.ItemsProcessed, summary.ItemsSkipped)
	return mentions, summary, nil
}

// runParallel splits the corpus into contiguous chunks, one per worker.
// Each worker owns its slice and appends to a private buffer; buffers
// are concatenated in chunk order after the join, which reproduces the
// sequential output exactly.
func (e *Extractor) runParallel(ctx context.Context, items []corpus.TextItem) ([]Mention, Summary, error) {
	workers := e.opts.Workers
	if workers > len(items) {
		workers = len(items)
	}

	type chunkResult struct {
		mentions  []Mention
		processed int
		skipped   int
	}
	results := make([]chunkResult, workers)

	g, gctx := errgroup.WithContext(ctx)
	chunkSize := (len(items) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		if start >= end {
			break
		}
		w := w
		g.Go(func() error {
			res := &results[w]
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				var ok bool
				res.mentions, ok = e.extractItem(i, items[i], res.mentions)
				if !ok {
					res.skipped++
					continue
				}
				res.processed++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	var mentions []Mention
	var summary Summary
	for _, res := range results {
		mentions = append(mentions, res.mentions...)
		summary.ItemsProcessed += res.processed
		summary.ItemsSkipped += res.skipped
	}
	summary.Mentions = len(mentions)
	debug.LogExtract("found %d mentions in %d items (%d skipped, %d workers)\n",
		summary.Mentions, summary.ItemsProcessed, summary.ItemsSkipped, workers)
	return mentions, summary, nil
}

// extractItem appends this item's mentions to out and reports whether
// the item was processable. Malformed text (invalid UTF-8) is the one
// recoverable per-item failure: skip, log, continue.
func (e *Extractor) extractItem(idx int, item corpus.TextItem, out []Mention) ([]Mention, bool) {
	if !utf8.ValidString(item.Text) {
		err := tgerrors.NewCorpusItemError(idx, string(item.Origin), fmt.Errorf("text is not valid UTF-8"))
		debug.LogExtract("skipping item: %v\n", err)
		return out, false
	}

	tok := NewTokenizer(item.Text)
	for {
		word, ok := tok.Next()
		if !ok {
			break
		}

		// Ticker match first: when both modes are on and both clear
		// their thresholds, only the ticker mention is emitted.
		if e.tickerIndex != nil {
			if m, ok := e.tickerIndex.Best(strings.ToUpper(word)); ok {
				if _, excluded := e.opts.Exclusions[m.Candidate]; !excluded {
					out = append(out, Mention{
						Ticker:        m.Candidate,
						CompanyName:   e.cat.NameFor(m.Candidate),
						OriginalWord:  word,
						MatchType:     MatchTicker,
						MatchScore:    m.Score,
						Text:          item.Text,
						TextIndex:     idx,
						Origin:        item.Origin,
						OriginalIndex: item.OriginalIndex,
					})
					continue
				}
				// An excluded ticker still falls through to name
				// matching; only the ticker-type mention is suppressed.
			}
		}

		if e.nameIndex != nil {
			if m, ok := e.nameIndex.Best(word); ok {
				out = append(out, Mention{
					Ticker:        e.cat.TickerFor(m.Candidate),
					CompanyName:   m.Candidate,
					OriginalWord:  word,
					MatchType:     MatchName,
					MatchScore:    m.Score,
					Text:          item.Text,
					TextIndex:     idx,
					Origin:        item.Origin,
					OriginalIndex: item.OriginalIndex,
				})
			}
		}
	}

	return out, true
}
