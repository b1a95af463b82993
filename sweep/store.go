package sweep

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// RunInfo describes a stored sweep.
type RunInfo struct {
	ID        string `db:"id"`
	StartedAt int64  `db:"started_at"` // unix milliseconds
	Ticks     int    `db:"ticks"`
	Seed      int64  `db:"seed"`
	Scenarios int    `db:"scenarios"`
}

// Started returns when the run began.
func (r RunInfo) Started() time.Time {
	return time.UnixMilli(r.StartedAt)
}

// Store keeps sweep results in SQLite.
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates a SQLite database at the given path.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		scenarios INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		arm_position INTEGER NOT NULL,
		finger_distance REAL NOT NULL,
		sparks INTEGER NOT NULL,
		first_spark_tick INTEGER NOT NULL,
		peak_charge INTEGER NOT NULL,
		minted INTEGER NOT NULL,
		drained INTEGER NOT NULL,
		final_charge INTEGER NOT NULL,
		PRIMARY KEY (run_id, name)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// NewRunInfo stamps a fresh run id.
func NewRunInfo(ticks int, seed int64, scenarios int) RunInfo {
	return RunInfo{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UnixMilli(),
		Ticks:     ticks,
		Seed:      seed,
		Scenarios: scenarios,
	}
}

// SaveRun writes a run and its results in one transaction.
func (s *Store) SaveRun(run RunInfo, results []Result) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (id, started_at, ticks, seed, scenarios) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.StartedAt, run.Ticks, run.Seed, run.Scenarios,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO results
		(run_id, name, arm_position, finger_distance, sparks, first_spark_tick,
		 peak_charge, minted, drained, final_charge)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(run.ID, r.Name, r.ArmPosition, r.FingerDistance, r.Sparks,
			r.FirstSparkTick, r.PeakCharge, r.Minted, r.Drained, r.FinalCharge); err != nil {
			return fmt.Errorf("insert result %s: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

// Results returns the results of a run ordered by scenario name.
func (s *Store) Results(runID string) ([]Result, error) {
	var results []Result
	err := s.conn.Select(&results,
		`SELECT name, arm_position, finger_distance, sparks, first_spark_tick,
		        peak_charge, minted, drained, final_charge
		 FROM results WHERE run_id = ? ORDER BY name`,
		runID,
	)
	return results, err
}

// Runs returns every stored run, newest first.
func (s *Store) Runs() ([]RunInfo, error) {
	var runs []RunInfo
	err := s.conn.Select(&runs,
		"SELECT id, started_at, ticks, seed, scenarios FROM runs ORDER BY started_at DESC",
	)
	return runs, err
}

// Run returns a single stored run.
func (s *Store) Run(id string) (RunInfo, error) {
	var run RunInfo
	err := s.conn.Get(&run, "SELECT id, started_at, ticks, seed, scenarios FROM runs WHERE id = ?", id)
	return run, err
}
