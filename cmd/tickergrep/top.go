package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tickergrep/internal/sink"
)

func topCommand() *cli.Command {
	return &cli.Command{
		Name:  "top",
		Usage: "Print the most-mentioned tickers from an existing results database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "Results database path",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "How many tickers to print",
			},
		},
		Action: runTop,
	}
}

func runTop(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	store, err := sink.NewStore(cfg.Output.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	total, err := store.MentionCount()
	if err != nil {
		return err
	}

	rows, err := store.TopFrequencies(cfg.Output.TopN)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No mentions recorded.")
		return nil
	}

	fmt.Printf("%d mentions total\n", total)
	for _, row := range rows {
		fmt.Printf("  %-6s %5d\n", row.Ticker, row.Count)
	}
	return nil
}
