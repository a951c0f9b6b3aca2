package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kdray/delivery-council/internal/agent"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS delivery_history (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	decision_id   TEXT NOT NULL,
	day           TEXT NOT NULL,
	choice        TEXT NOT NULL,
	hours         REAL NOT NULL,
	gross         REAL NOT NULL,
	net           REAL NOT NULL,
	actual_hours  REAL NOT NULL DEFAULT 0,
	actual_net    REAL NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_delivery_history_day ON delivery_history(day);

CREATE TABLE IF NOT EXISTS decision_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	decision_id     TEXT NOT NULL,
	winner          TEXT NOT NULL,
	urgency         REAL NOT NULL,
	nudge_applied   INTEGER NOT NULL DEFAULT 0,
	inputs_json     TEXT,
	situation_json  TEXT,
	ballots_json    TEXT,
	totals_json     TEXT,
	reason          TEXT,
	created_at      TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store keeps delivery history and the decision log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region append
// Append records one history entry.
func (s *Store) Append(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO delivery_history
		 (decision_id, day, choice, hours, gross, net, actual_hours, actual_net, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.DecisionID, e.Day, string(e.Choice),
		e.Hours, e.Gross, e.Net, e.ActualHours, e.ActualNet,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// #endregion append

// #region recent
// Recent returns the most recent entries, oldest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT decision_id, day, choice, hours, gross, net, actual_hours, actual_net, created_at
		 FROM delivery_history ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var choice, createdStr string
		if err := rows.Scan(&e.DecisionID, &e.Day, &choice,
			&e.Hours, &e.Gross, &e.Net, &e.ActualHours, &e.ActualNet, &createdStr); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Choice = agent.Action(choice)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	// reverse to chronological order
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// #endregion recent

// #region stats
// Stats summarizes entries within the lookback window relative to today.
// "Hours yesterday" is the total over the most recent recorded day; the
// net-per-hour average covers entries with actual work. Entries carrying
// recorded actuals take precedence over estimates.
func (s *Store) Stats(lookbackDays, maxEntries int, today time.Time) (Stats, error) {
	entries, err := s.Recent(maxEntries)
	if err != nil {
		return Stats{}, err
	}

	day := today.Truncate(24 * time.Hour)
	byDay := map[string]float64{}
	var nphSum float64
	var nphCount int

	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Day)
		if err != nil {
			continue
		}
		if int(day.Sub(d.Truncate(24*time.Hour)).Hours()/24) > lookbackDays {
			continue
		}
		hours, net := e.Hours, e.Net
		if e.ActualHours > 0 {
			hours, net = e.ActualHours, e.ActualNet
		}
		byDay[e.Day] += hours
		if hours > 0 {
			nphSum += net / hours
			nphCount++
		}
	}

	var st Stats
	var latest string
	for d, h := range byDay {
		if d > latest {
			latest = d
			st.HoursYesterday = h
		}
	}
	if nphCount > 0 {
		st.AvgNetPerHour = nphSum / float64(nphCount)
	}
	return st, nil
}

// #endregion stats
