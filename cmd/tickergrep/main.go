package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tickergrep/internal/config"
	"github.com/standardbeagle/tickergrep/internal/debug"
	"github.com/standardbeagle/tickergrep/internal/version"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", c.String("config"), err)
	}

	if c.IsSet("catalog") {
		cfg.Catalog.Path = c.String("catalog")
	}
	if c.IsSet("min-ticker-length") {
		cfg.Catalog.MinTickerLength = c.Int("min-ticker-length")
	}
	if c.IsSet("ticker-threshold") {
		cfg.Matching.TickerThreshold = c.Int("ticker-threshold")
	}
	if c.IsSet("name-threshold") {
		cfg.Matching.NameThreshold = c.Int("name-threshold")
	}
	if c.IsSet("mode") {
		cfg.Matching.Mode = c.String("mode")
	}
	if c.IsSet("exclude") {
		cfg.Matching.ExcludedTickers = c.StringSlice("exclude")
	}
	if c.IsSet("db") {
		cfg.Output.Database = c.String("db")
	}
	if c.IsSet("top") {
		cfg.Output.TopN = c.Int("top")
	}
	if c.IsSet("workers") {
		cfg.Performance.Workers = c.Int("workers")
	}

	if err := config.NewValidator().ValidateAndSetDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if debug.IsDebugEnabled() {
		if logPath, err := debug.InitDebugLogFile(); err == nil {
			defer debug.CloseDebugLog()
			fmt.Fprintf(os.Stderr, "debug log: %s\n", logPath)
		}
	}

	app := &cli.App{
		Name:                   "tickergrep",
		Usage:                  "Fuzzy stock-mention extraction over text corpora",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
		},
		Commands: []*cli.Command{
			extractCommand(),
			topCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
