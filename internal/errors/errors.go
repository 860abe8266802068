package errors

import (
	"fmt"
	"time"
)

// Error types for the tickergrep extraction pipeline
type ErrorType string

const (
	// Catalog errors
	ErrorTypeCatalog ErrorType = "catalog"

	// Corpus errors
	ErrorTypeCorpusItem ErrorType = "corpus_item"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// CatalogError represents a structural problem in the ticker catalog.
// Catalog errors are always fatal: extraction never runs against a
// partially loaded catalog.
type CatalogError struct {
	Type       ErrorType
	Row        int // 1-based row in the source file, 0 if not row-specific
	Field      string
	Source     string // file path or logical source name
	Underlying error
	Timestamp  time.Time
}

// NewCatalogError creates a new catalog error with context
func NewCatalogError(source string, err error) *CatalogError {
	return &CatalogError{
		Type:       ErrorTypeCatalog,
		Source:     source,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithRow adds row information to the error
func (e *CatalogError) WithRow(row int) *CatalogError {
	e.Row = row
	return e
}

// WithField adds the offending field name to the error
func (e *CatalogError) WithField(field string) *CatalogError {
	e.Field = field
	return e
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	switch {
	case e.Row > 0 && e.Field != "":
		return fmt.Sprintf("catalog %s row %d field %s: %v", e.Source, e.Row, e.Field, e.Underlying)
	case e.Row > 0:
		return fmt.Sprintf("catalog %s row %d: %v", e.Source, e.Row, e.Underlying)
	default:
		return fmt.Sprintf("catalog %s: %v", e.Source, e.Underlying)
	}
}

// Unwrap returns the underlying error for errors.Is/As
func (e *CatalogError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error. Config errors are fatal
// at startup.
type ConfigError struct {
	Type       ErrorType
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
	}
	return fmt.Sprintf("config error for field %s: %v", e.Field, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// CorpusItemError represents a malformed corpus item. These are
// recoverable: the extractor skips the item, counts it, and continues.
type CorpusItemError struct {
	Type       ErrorType
	Index      int // position of the item within the corpus
	Origin     string
	Underlying error
	Timestamp  time.Time
}

// NewCorpusItemError creates a new per-item corpus error
func NewCorpusItemError(index int, origin string, err error) *CorpusItemError {
	return &CorpusItemError{
		Type:       ErrorTypeCorpusItem,
		Index:      index,
		Origin:     origin,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *CorpusItemError) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("corpus item %d (%s): %v", e.Index, e.Origin, e.Underlying)
	}
	return fmt.Sprintf("corpus item %d: %v", e.Index, e.Underlying)
}

// Unwrap returns the underlying error
func (e *CorpusItemError) Unwrap() error {
	return e.Underlying
}

// IsRecoverable reports whether extraction may continue past this error.
// Only per-item corpus errors are recoverable; catalog and config errors
// abort the run.
func IsRecoverable(err error) bool {
	switch err.(type) {
	case *CorpusItemError:
		return true
	default:
		return false
	}
}
