package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tickergrep/internal/catalog"
	"github.com/standardbeagle/tickergrep/internal/config"
	"github.com/standardbeagle/tickergrep/internal/corpus"
	"github.com/standardbeagle/tickergrep/internal/extract"
	"github.com/standardbeagle/tickergrep/internal/freq"
	"github.com/standardbeagle/tickergrep/internal/sink"
)

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract stock mentions from corpus files into a results database",
		ArgsUsage: "[corpus glob ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Catalog file (.txt with one ticker per line, or .csv with Ticker/Name columns)",
			},
			&cli.StringSliceFlag{
				Name:  "corpus",
				Usage: "Corpus JSONL files (doublestar globs, e.g. --corpus 'data/**/*.jsonl')",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Results database path",
			},
			&cli.StringFlag{
				Name:  "jsonl",
				Usage: "Also write mentions and frequencies as JSONL files with this prefix",
			},
			&cli.IntFlag{Name: "ticker-threshold", Usage: "Minimum score for ticker matches (0-100)"},
			&cli.IntFlag{Name: "name-threshold", Usage: "Minimum score for company-name matches (0-100)"},
			&cli.StringFlag{Name: "mode", Usage: "Match mode: ticker, name, or both"},
			&cli.IntFlag{Name: "min-ticker-length", Usage: "Drop catalog tickers shorter than this"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "Replace the common-word ticker exclusion set"},
			&cli.IntFlag{Name: "top", Usage: "How many top tickers to print"},
			&cli.IntFlag{Name: "workers", Usage: "Extraction workers (0 = number of CPUs)"},
		},
		Action: runExtract,
	}
}

func runExtract(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	if err := config.RequireCatalogPath(cfg); err != nil {
		return err
	}

	patterns := c.StringSlice("corpus")
	patterns = append(patterns, c.Args().Slice()...)
	if len(patterns) == 0 {
		return fmt.Errorf("no corpus files given (use --corpus or positional globs)")
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.LoadFile(cfg.Catalog.Path, cfg.Catalog.MinTickerLength)
	if err != nil {
		return err
	}
	fmt.Printf("Catalog: %d entries from %s\n", cat.Len(), cfg.Catalog.Path)

	items, readStats, err := corpus.ReadFiles(patterns)
	if err != nil {
		return err
	}
	fmt.Printf("Corpus: %d items (%d malformed lines skipped)\n", readStats.Items, readStats.Skipped)

	extractor, err := extract.New(cat, cfg.ExtractOptions())
	if err != nil {
		return err
	}

	start := time.Now()
	mentions, summary, err := extractor.Run(ctx, items)
	if err != nil {
		return err
	}

	table := freq.Aggregate(mentions)
	fmt.Printf("Found %d mentions of %d unique stocks in %s (%d items, %d skipped)\n",
		summary.Mentions, table.Len(), time.Since(start).Round(time.Millisecond),
		summary.ItemsProcessed, summary.ItemsSkipped)

	if err := writeResults(cfg.Output.Database, c.String("jsonl"), mentions, table); err != nil {
		return err
	}

	printSummary(mentions, table, cfg.Output.TopN)
	return nil
}

func writeResults(dbPath, jsonlPrefix string, mentions []extract.Mention, table *freq.Table) error {
	store, err := sink.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.WriteMentions(mentions); err != nil {
		return err
	}
	if err := store.WriteFrequencies(table.Rows()); err != nil {
		return err
	}
	fmt.Printf("Saved results to %s\n", dbPath)

	if jsonlPrefix == "" {
		return nil
	}

	mentionsFile, err := os.Create(jsonlPrefix + "_mentions.jsonl")
	if err != nil {
		return err
	}
	defer mentionsFile.Close()
	freqFile, err := os.Create(jsonlPrefix + "_frequencies.jsonl")
	if err != nil {
		return err
	}
	defer freqFile.Close()

	j := &sink.JSONL{Mentions: mentionsFile, Frequencies: freqFile}
	if err := j.WriteMentions(mentions); err != nil {
		return err
	}
	if err := j.WriteFrequencies(table.Rows()); err != nil {
		return err
	}
	fmt.Printf("Saved JSONL to %s_mentions.jsonl and %s_frequencies.jsonl\n", jsonlPrefix, jsonlPrefix)
	return nil
}

func printSummary(mentions []extract.Mention, table *freq.Table, topN int) {
	rows := freq.Summarize(mentions, table, topN)
	if len(rows) == 0 {
		return
	}

	fmt.Printf("\nMost commonly mentioned stocks:\n")
	for _, row := range rows {
		fmt.Printf("  %-6s %5d mentions in %d texts\n", row.Ticker, row.Count, row.UniqueTexts)
		fmt.Printf("         e.g. %q in %q (score %d, %s)\n",
			row.Example.OriginalWord, truncate(row.Example.Text, 60),
			row.Example.MatchScore, row.Example.Origin)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
