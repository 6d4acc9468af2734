// Package storage keeps a ledger of finished rounds in an in-memory SQLite
// database. The ledger lives as long as the process; nothing is written to
// disk. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records the outcome of every round played in this run.
type Ledger struct {
	db *sql.DB
}

// RoundResult is a single finished round.
type RoundResult struct {
	ID          int64
	Preset      string
	Won         bool
	GuessesUsed int
	MaxGuesses  int
	Holes       int
	Colors      int
	CreatedAt   time.Time
}

// Stats summarizes the rounds played with one preset.
type Stats struct {
	Preset      string
	Played      int
	Won         int
	BestGuesses int     // Fewest guesses in a won round, 0 if none won
	AvgGuesses  float64 // Average guesses over won rounds
}

// WinRate returns the fraction of rounds won, or 0 when nothing was played.
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	ledger := &Ledger{db: db}

	// Run migrations
	if err := ledger.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return ledger, nil
}

// migrate creates the database schema if it doesn't exist.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			won INTEGER NOT NULL,
			guesses_used INTEGER NOT NULL,
			max_guesses INTEGER NOT NULL,
			holes INTEGER NOT NULL,
			colors INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_preset ON rounds(preset);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection. The recorded rounds are gone afterwards.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (l *Ledger) SaveRound(r RoundResult) (int64, error) {
	result, err := l.db.Exec(
		`INSERT INTO rounds (preset, won, guesses_used, max_guesses, holes, colors)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Preset, r.Won, r.GuessesUsed, r.MaxGuesses, r.Holes, r.Colors,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, preset, won, guesses_used, max_guesses, holes, colors, created_at`

// RecentRounds retrieves the most recent rounds across all presets, newest first.
func (l *Ledger) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundsForPreset retrieves every round played with the given preset, oldest first.
func (l *Ledger) RoundsForPreset(preset string) ([]RoundResult, error) {
	rows, err := l.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE preset = ?
		 ORDER BY id`,
		preset,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]RoundResult, error) {
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Preset,
			&r.Won,
			&r.GuessesUsed,
			&r.MaxGuesses,
			&r.Holes,
			&r.Colors,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string values for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

const statsQuery = `
	SELECT preset,
	       COUNT(*),
	       COALESCE(SUM(won), 0),
	       MIN(CASE WHEN won THEN guesses_used END),
	       AVG(CASE WHEN won THEN guesses_used END)
	FROM rounds`

// Stats summarizes the rounds played with the given preset.
// A preset with no rounds yields zero stats.
func (l *Ledger) Stats(preset string) (Stats, error) {
	st := Stats{Preset: preset}
	var name sql.NullString
	var best sql.NullInt64
	var avg sql.NullFloat64

	err := l.db.QueryRow(statsQuery+` WHERE preset = ?`, preset).
		Scan(&name, &st.Played, &st.Won, &best, &avg)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.BestGuesses = int(best.Int64)
	}
	if avg.Valid {
		st.AvgGuesses = avg.Float64
	}
	return st, nil
}

// AllStats summarizes every preset that has at least one round, ordered by preset.
func (l *Ledger) AllStats() ([]Stats, error) {
	rows, err := l.db.Query(statsQuery + ` GROUP BY preset ORDER BY preset`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var result []Stats
	for rows.Next() {
		var st Stats
		var best sql.NullInt64
		var avg sql.NullFloat64
		if err := rows.Scan(&st.Preset, &st.Played, &st.Won, &best, &avg); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if best.Valid {
			st.BestGuesses = int(best.Int64)
		}
		if avg.Valid {
			st.AvgGuesses = avg.Float64
		}
		result = append(result, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// Clear deletes every recorded round.
func (l *Ledger) Clear() error {
	_, err := l.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
