package config

import (
	"errors"
	"fmt"
	"strconv"

	tgerrors "github.com/standardbeagle/tickergrep/internal/errors"
	"github.com/standardbeagle/tickergrep/internal/extract"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart
// defaults. Returns a ConfigError naming the offending field if
// validation fails.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateCatalog(&cfg.Catalog); err != nil {
		return err
	}
	if err := v.validateMatching(&cfg.Matching); err != nil {
		return err
	}
	if err := v.validateOutput(&cfg.Output); err != nil {
		return err
	}
	if err := v.validatePerformance(&cfg.Performance); err != nil {
		return err
	}
	return nil
}

// validateCatalog does not require a path: only extraction needs one,
// and the extract command checks for it. See RequireCatalogPath.
func (v *Validator) validateCatalog(c *Catalog) error {
	if c.MinTickerLength < 1 {
		c.MinTickerLength = 3
	}
	if c.MinTickerLength > 10 {
		return tgerrors.NewConfigError("catalog.min_ticker_length", strconv.Itoa(c.MinTickerLength),
			errors.New("no real ticker is longer than 10 characters"))
	}
	return nil
}

// RequireCatalogPath fails when no catalog file is configured. Called
// by commands that actually load a catalog.
func RequireCatalogPath(cfg *Config) error {
	if cfg.Catalog.Path == "" {
		return tgerrors.NewConfigError("catalog.path", "",
			errors.New("catalog path cannot be empty (set catalog.path or --catalog)"))
	}
	return nil
}

func (v *Validator) validateMatching(m *Matching) error {
	if m.TickerThreshold < 0 || m.TickerThreshold > 100 {
		return tgerrors.NewConfigError("matching.ticker_threshold", strconv.Itoa(m.TickerThreshold),
			errors.New("must be between 0 and 100"))
	}
	if m.NameThreshold < 0 || m.NameThreshold > 100 {
		return tgerrors.NewConfigError("matching.name_threshold", strconv.Itoa(m.NameThreshold),
			errors.New("must be between 0 and 100"))
	}

	switch extract.Mode(m.Mode) {
	case extract.ModeTicker, extract.ModeName, extract.ModeBoth:
	default:
		return tgerrors.NewConfigError("matching.mode", m.Mode,
			fmt.Errorf("must be %s, %s, or %s", extract.ModeTicker, extract.ModeName, extract.ModeBoth))
	}
	return nil
}

func (v *Validator) validateOutput(o *Output) error {
	if o.Database == "" {
		return tgerrors.NewConfigError("output.database", "",
			errors.New("database path cannot be empty"))
	}
	if o.TopN < 1 {
		o.TopN = 10
	}
	return nil
}

func (v *Validator) validatePerformance(p *Performance) error {
	if p.Workers < 0 {
		return tgerrors.NewConfigError("performance.workers", strconv.Itoa(p.Workers),
			errors.New("must not be negative (0 = auto)"))
	}
	if p.Workers > 1024 {
		return tgerrors.NewConfigError("performance.workers", strconv.Itoa(p.Workers),
			errors.New("more than 1024 workers is never useful here"))
	}
	return nil
}
