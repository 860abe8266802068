// Package config loads and validates run configuration for tickergrep.
// Configuration comes from a TOML file with CLI flags layered on top;
// validation happens once at startup and failures are fatal.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/tickergrep/internal/catalog"
	"github.com/standardbeagle/tickergrep/internal/extract"
)

// DefaultConfigFile is looked up in the working directory when no
// --config flag is given.
const DefaultConfigFile = ".tickergrep.toml"

type Config struct {
	Catalog     Catalog     `toml:"catalog"`
	Matching    Matching    `toml:"matching"`
	Output      Output      `toml:"output"`
	Performance Performance `toml:"performance"`
}

type Catalog struct {
	Path            string `toml:"path"`
	MinTickerLength int    `toml:"min_ticker_length"`
}

type Matching struct {
	TickerThreshold int    `toml:"ticker_threshold"`
	NameThreshold   int    `toml:"name_threshold"`
	Mode            string `toml:"mode"` // ticker, name, or both

	// ExcludedTickers overrides the built-in common-word exclusion set
	// when present. Leave it out of the file to keep the defaults; set
	// it to [] to disable exclusion entirely.
	ExcludedTickers []string `toml:"excluded_tickers"`
}

type Output struct {
	Database string `toml:"database"`
	TopN     int    `toml:"top_n"`
}

type Performance struct {
	Workers int `toml:"workers"` // 0 = auto-detect (NumCPU)
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Catalog: Catalog{
			MinTickerLength: catalog.DefaultMinTickerLength,
		},
		Matching: Matching{
			TickerThreshold: extract.DefaultTickerThreshold,
			NameThreshold:   extract.DefaultNameThreshold,
			Mode:            string(extract.ModeBoth),
		},
		Output: Output{
			Database: "stock_mentions.db",
			TopN:     10,
		},
	}
}

// Load reads the TOML config at path, layered over defaults. A missing
// file is not an error: defaults apply, matching the behavior of
// running from a directory without a config file.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ExtractOptions maps the configuration onto extractor options.
func (c *Config) ExtractOptions() extract.Options {
	opts := extract.Options{
		TickerThreshold: c.Matching.TickerThreshold,
		NameThreshold:   c.Matching.NameThreshold,
		Mode:            extract.Mode(c.Matching.Mode),
		Workers:         c.Performance.Workers,
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	if c.Matching.ExcludedTickers == nil {
		opts.Exclusions = catalog.DefaultExclusions()
	} else {
		opts.Exclusions = make(map[string]struct{}, len(c.Matching.ExcludedTickers))
		for _, t := range c.Matching.ExcludedTickers {
			opts.Exclusions[t] = struct{}{}
		}
	}
	return opts
}
