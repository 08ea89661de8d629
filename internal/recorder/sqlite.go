package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"dcalab/pkg/model"
)

// SQLiteRecorder persists analysis runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulation_runs (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id           TEXT NOT NULL,
			timestamp        INTEGER NOT NULL,
			period           TEXT,
			data_points      INTEGER,
			strategy         TEXT,
			total_invested   REAL,
			final_value      REAL,
			gain_abs         REAL,
			gain_pct         REAL,
			max_drawdown_pct REAL,
			buy_count        INTEGER,
			is_best          INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sim_run ON simulation_runs(run_id)`,

		`CREATE TABLE IF NOT EXISTS risk_scores (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			timestamp      INTEGER NOT NULL,
			identifier     TEXT,
			valuation      INTEGER,
			profitability  INTEGER,
			volatility     INTEGER,
			size           INTEGER,
			price_strength INTEGER,
			composite      INTEGER,
			label          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_risk_run ON risk_scores(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordComparison stores one row per surviving strategy of a comparison.
func (r *SQLiteRecorder) RecordComparison(runID string, cmp *model.ComparisonResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, res := range cmp.Results {
		isBest := 0
		if res.Strategy == cmp.Best {
			isBest = 1
		}
		_, err := r.db.Exec(`INSERT INTO simulation_runs
			(run_id, timestamp, period, data_points, strategy,
			 total_invested, final_value, gain_abs, gain_pct,
			 max_drawdown_pct, buy_count, is_best)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, now, cmp.Period, cmp.DataPoints, res.Strategy,
			res.TotalInvested, res.FinalValue, res.GainAbs, res.GainPct,
			res.MaxDrawdownPct, res.BuyCount, isBest,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// RecordRiskScores stores one row per scored company.
func (r *SQLiteRecorder) RecordRiskScores(runID string, scores []model.RiskScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, s := range scores {
		_, err := r.db.Exec(`INSERT INTO risk_scores
			(run_id, timestamp, identifier, valuation, profitability,
			 volatility, size, price_strength, composite, label)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			runID, now, s.Identifier, s.Valuation, s.Profitability,
			s.Volatility, s.Size, s.PriceStrength, s.Composite, s.Label,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
