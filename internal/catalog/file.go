package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/tickergrep/internal/debug"
	tgerrors "github.com/standardbeagle/tickergrep/internal/errors"
)

// LoadFile loads a catalog file, dispatching on extension: .txt files are
// one ticker per line (the ticker doubles as the name), anything else is
// parsed as CSV with Ticker and Name columns.
func LoadFile(path string, minTickerLen int) (*Catalog, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return LoadTickerFile(path, minTickerLen)
	}
	return LoadCSVFile(path, minTickerLen)
}

// LoadTickerFile reads a plain ticker list, one symbol per line. Blank
// lines are skipped and each surviving ticker is used as its own name.
func LoadTickerFile(path string, minTickerLen int) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tgerrors.NewCatalogError(path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		ticker := strings.TrimSpace(scanner.Text())
		if ticker == "" {
			continue
		}
		entries = append(entries, Entry{Ticker: ticker, Name: ticker})
	}
	if err := scanner.Err(); err != nil {
		return nil, tgerrors.NewCatalogError(path, err)
	}

	c, err := Load(entries, minTickerLen)
	if err != nil {
		return nil, err
	}
	debug.LogCatalog("loaded %d tickers from %s (min length %d)\n", c.Len(), path, minTickerLen)
	return c, nil
}

// LoadCSVFile reads a tabular catalog with a header row containing
// Ticker and Name columns (any order, case-insensitive). Missing columns
// fail the load.
func LoadCSVFile(path string, minTickerLen int) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tgerrors.NewCatalogError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, tgerrors.NewCatalogError(path, fmt.Errorf("failed to read header: %w", err))
	}

	tickerCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "ticker":
			tickerCol = i
		case "name":
			nameCol = i
		}
	}
	if tickerCol < 0 {
		return nil, tgerrors.NewCatalogError(path, fmt.Errorf("missing column")).WithField("Ticker")
	}
	if nameCol < 0 {
		return nil, tgerrors.NewCatalogError(path, fmt.Errorf("missing column")).WithField("Name")
	}

	var entries []Entry
	row := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, tgerrors.NewCatalogError(path, err).WithRow(row + 1)
		}
		row++
		if tickerCol >= len(record) || nameCol >= len(record) {
			return nil, tgerrors.NewCatalogError(path, fmt.Errorf("row has %d columns", len(record))).WithRow(row)
		}
		entries = append(entries, Entry{
			Ticker: strings.TrimSpace(record[tickerCol]),
			Name:   strings.TrimSpace(record[nameCol]),
		})
	}

	c, err := Load(entries, minTickerLen)
	if err != nil {
		if ce, ok := err.(*tgerrors.CatalogError); ok {
			ce.Source = path
			// Load numbers rows from 1; account for the header line.
			if ce.Row > 0 {
				ce.Row++
			}
		}
		return nil, err
	}
	debug.LogCatalog("loaded %d stocks from %s (min length %d)\n", c.Len(), path, minTickerLen)
	return c, nil
}
