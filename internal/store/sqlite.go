package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inovacc/afscreen/internal/encoding"
	"github.com/inovacc/afscreen/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	data       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at);
`

// SQLite implements Store on a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates or opens a SQLite database at the specified path.
func NewSQLite(path string) (*SQLite, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) SaveRun(run *model.Run) error {
	if err := validateRun(run); err != nil {
		return err
	}

	data, err := json.Marshal(run)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, created_at, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at, data = excluded.data`,
		run.ID, run.CreatedAt.UnixNano(), string(data),
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	return nil
}

func (s *SQLite) GetRun(id string) (*model.Run, error) {
	var data string

	err := s.db.QueryRow(`SELECT data FROM runs WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading run: %w", err)
	}

	return encoding.ParseJSON[model.Run]([]byte(data))
}

func (s *SQLite) ListRuns(limit int) ([]model.Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(`SELECT data FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.Run

	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		run, err := encoding.ParseJSON[model.Run]([]byte(data))
		if err != nil {
			return nil, err
		}

		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
