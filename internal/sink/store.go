package sink

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/standardbeagle/tickergrep/internal/debug"
	"github.com/standardbeagle/tickergrep/internal/extract"
	"github.com/standardbeagle/tickergrep/internal/freq"
)

// Store persists mentions and frequencies to SQLite.
//
// Individual writes are transactional: a failed batch leaves the
// database unchanged. Row order follows write order, so rowid preserves
// the canonical mention order and the table's insertion order.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) a SQLite results database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers (the top command) usable while writing
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mentions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ticker TEXT NOT NULL,
		company_name TEXT,
		original_word TEXT NOT NULL,
		match_type TEXT NOT NULL,
		match_score INTEGER NOT NULL,
		text TEXT NOT NULL,
		text_index INTEGER NOT NULL,
		origin TEXT,
		original_index TEXT
	);

	CREATE TABLE IF NOT EXISTS frequencies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ticker TEXT NOT NULL UNIQUE,
		frequency INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_mentions_ticker ON mentions(ticker);
	`
	_, err := s.db.Exec(schema)
	return err
}

// WriteMentions replaces the stored mention list with the given one,
// preserving its order. Replacing keeps the mentions table consistent
// with the frequencies derived from the same run.
func (s *Store) WriteMentions(mentions []extract.Mention) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM mentions"); err != nil {
		return fmt.Errorf("failed to clear mentions: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO mentions
			(ticker, company_name, original_word, match_type, match_score,
			 text, text_index, origin, original_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range mentions {
		if _, err := stmt.Exec(
			m.Ticker, m.CompanyName, m.OriginalWord, string(m.MatchType), m.MatchScore,
			m.Text, m.TextIndex, string(m.Origin), m.OriginalIndex,
		); err != nil {
			return fmt.Errorf("failed to insert mention for %s: %w", m.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mentions: %w", err)
	}
	debug.LogSink("saved %d mentions\n", len(mentions))
	return nil
}

// WriteFrequencies replaces the frequency table with the given rows,
// preserving their order.
func (s *Store) WriteFrequencies(rows []freq.TickerCount) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM frequencies"); err != nil {
		return fmt.Errorf("failed to clear frequencies: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO frequencies (ticker, frequency) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.Ticker, row.Count); err != nil {
			return fmt.Errorf("failed to insert frequency for %s: %w", row.Ticker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit frequencies: %w", err)
	}
	debug.LogSink("saved %d frequency rows\n", len(rows))
	return nil
}

// TopFrequencies reads the n highest-count tickers back from the
// database. Ties keep write order via rowid, matching the in-memory
// aggregation.
func (s *Store) TopFrequencies(n int) ([]freq.TickerCount, error) {
	rows, err := s.db.Query(
		"SELECT ticker, frequency FROM frequencies ORDER BY frequency DESC, id ASC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query frequencies: %w", err)
	}
	defer rows.Close()

	var out []freq.TickerCount
	for rows.Next() {
		var tc freq.TickerCount
		if err := rows.Scan(&tc.Ticker, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan frequency row: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// MentionCount returns the number of stored mentions.
func (s *Store) MentionCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM mentions").Scan(&n)
	return n, err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
