package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists session history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets analysis tools read while a scheduler keeps writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS day_results (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			session_id     TEXT NOT NULL,
			day            INTEGER NOT NULL,
			event_type     TEXT,
			tier           TEXT,
			change_percent REAL,
			alpha          REAL,
			price_before   REAL,
			price_after    REAL,
			total_today    REAL,
			pnl            REAL,
			pnl_percent    REAL,
			phase          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_session ON day_results(session_id, day)`,

		`CREATE TABLE IF NOT EXISTS session_endings (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			session_id         TEXT NOT NULL UNIQUE,
			seed               INTEGER,
			days               INTEGER,
			phase              TEXT,
			final_total        REAL,
			roi                REAL,
			title              TEXT,
			description        TEXT,
			trades             INTEGER,
			all_ins            INTEGER,
			panic_sells        INTEGER,
			luck_events        INTEGER,
			max_drawdown_ratio REAL,
			timing_score       REAL,
			avg_abs_alpha      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_endings_ts ON session_endings(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDay(rec *DayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO day_results
		(timestamp, session_id, day, event_type, tier, change_percent, alpha,
		 price_before, price_after, total_today, pnl, pnl_percent, phase)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.SessionID, rec.Day, rec.EventType, rec.Tier, rec.ChangePercent, rec.Alpha,
		rec.PriceBefore, rec.PriceAfter, rec.TotalToday, rec.PnL, rec.PnLPercent, rec.Phase,
	)
	return err
}

func (r *SQLiteRecorder) RecordEnding(rec *EndingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO session_endings
		(timestamp, session_id, seed, days, phase, final_total, roi, title, description,
		 trades, all_ins, panic_sells, luck_events, max_drawdown_ratio, timing_score, avg_abs_alpha)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.SessionID, rec.Seed, rec.Days, rec.Phase, rec.FinalTotal, rec.ROI,
		rec.Title, rec.Description,
		rec.Trades, rec.AllIns, rec.PanicSells, rec.LuckEvents,
		rec.MaxDrawdownRatio, rec.TimingScore, rec.AvgAbsAlpha,
	)
	return err
}

// EndingCounts returns how many recorded sessions reached each title.
func (r *SQLiteRecorder) EndingCounts() (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT title, COUNT(*) FROM session_endings GROUP BY title`)
	if err != nil {
		return nil, fmt.Errorf("query endings: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var title string
		var n int
		if err := rows.Scan(&title, &n); err != nil {
			return nil, fmt.Errorf("scan ending: %w", err)
		}
		counts[title] = n
	}
	return counts, rows.Err()
}

// DayCount returns the number of recorded days for a session.
func (r *SQLiteRecorder) DayCount(sessionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM day_results WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
