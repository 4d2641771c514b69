// Package sqlite persists calculation history in a local SQLite database.
// Rows are append-only; a calculation is a fact once produced, corrections
// are new calculations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/tazlab/tazgo/internal/domain"
)

// Store is a SQLite-backed calculation history.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Record is one saved calculation: headline figures in columns for listing,
// the full result as JSON for retrieval.
type Record struct {
	ID            int64           `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	WorkStartDate string          `json:"work_start_date"`
	WorkEndDate   string          `json:"work_end_date"`
	TotalWorkDays int             `json:"total_work_days"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalNet      decimal.Decimal `json:"total_net"`
	ResultJSON    string          `json:"-"`
}

// Result decodes the stored full result.
func (r Record) Result() (*domain.CalculationResult, error) {
	var res domain.CalculationResult
	if err := json.Unmarshal([]byte(r.ResultJSON), &res); err != nil {
		return nil, fmt.Errorf("failed to decode stored result %d: %w", r.ID, err)
	}
	return &res, nil
}

// New creates a store at the given path. Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		work_start_date TEXT NOT NULL,
		work_end_date TEXT NOT NULL,
		total_work_days INTEGER NOT NULL,
		total_gross TEXT NOT NULL,
		total_net TEXT NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save records a calculation result and returns its row id.
func (s *Store) Save(ctx context.Context, result *domain.CalculationResult) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode result: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations
			(created_at, work_start_date, work_end_date, total_work_days, total_gross, total_net, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		result.WorkStartDate.Format("2006-01-02"),
		result.WorkEndDate.Format("2006-01-02"),
		result.TotalWorkDays,
		result.TotalGross.StringFixed(2),
		result.TotalNet.StringFixed(2),
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert calculation: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent calculations, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, work_start_date, work_end_date, total_work_days, total_gross, total_net, result_json
		FROM calculations
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r          Record
			createdAt  string
			gross, net string
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.WorkStartDate, &r.WorkEndDate,
			&r.TotalWorkDays, &gross, &net, &r.ResultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan calculation row: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at of row %d: %w", r.ID, err)
		}
		if r.TotalGross, err = decimal.NewFromString(gross); err != nil {
			return nil, fmt.Errorf("failed to parse total_gross of row %d: %w", r.ID, err)
		}
		if r.TotalNet, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("failed to parse total_net of row %d: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Get returns one saved calculation by id.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, work_start_date, work_end_date, total_work_days, total_gross, total_net, result_json
		FROM calculations
		WHERE id = ?`, id)

	var (
		r          Record
		createdAt  string
		gross, net string
	)
	err := row.Scan(&r.ID, &createdAt, &r.WorkStartDate, &r.WorkEndDate,
		&r.TotalWorkDays, &gross, &net, &r.ResultJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("calculation %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load calculation %d: %w", id, err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at of row %d: %w", r.ID, err)
	}
	if r.TotalGross, err = decimal.NewFromString(gross); err != nil {
		return nil, fmt.Errorf("failed to parse total_gross of row %d: %w", r.ID, err)
	}
	if r.TotalNet, err = decimal.NewFromString(net); err != nil {
		return nil, fmt.Errorf("failed to parse total_net of row %d: %w", r.ID, err)
	}
	return &r, nil
}
