package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by SQLite.
//
// It expects an *sql.DB that uses a SQLite driver, for example:
//
//	import _ "modernc.org/sqlite"
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates the schema if needed and returns the store.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("creating reports schema: %w", err)
	}
	return s, nil
}

// OpenSQLite opens (or creates) the SQLite database at path and returns a store on it.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	s, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			name TEXT NOT NULL,
			symptoms TEXT NOT NULL,
			other_symptoms TEXT NOT NULL,
			willingness TEXT NOT NULL,
			cure_preference TEXT NOT NULL,
			recommendations TEXT NOT NULL
		);`,
	)
	return err
}

// Save inserts the report, replacing any report with the same ID.
func (s *SQLiteStore) Save(ctx context.Context, r Report) error {
	symptoms, err := json.Marshal(nonNil(r.Symptoms))
	if err != nil {
		return err
	}
	recs, err := json.Marshal(nonNil(r.Recommendations))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO reports
			(id, created_at, name, symptoms, other_symptoms, willingness, cure_preference, recommendations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.CreatedAt.UnixNano(),
		r.Name,
		string(symptoms),
		r.OtherSymptoms,
		r.Willingness,
		r.CurePreference,
		string(recs),
	)
	if err != nil {
		return fmt.Errorf("saving report %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, name, symptoms, other_symptoms, willingness, cure_preference, recommendations
		FROM reports WHERE id = ?`, id)

	r, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, err
}

func (s *SQLiteStore) List(ctx context.Context) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, name, symptoms, other_symptoms, willingness, cure_preference, recommendations
		FROM reports ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(sc scanner) (Report, error) {
	var (
		r         Report
		createdAt int64
		symptoms  string
		recs      string
	)
	if err := sc.Scan(&r.ID, &createdAt, &r.Name, &symptoms, &r.OtherSymptoms, &r.Willingness, &r.CurePreference, &recs); err != nil {
		return Report{}, err
	}
	r.CreatedAt = time.Unix(0, createdAt).UTC()
	if err := json.Unmarshal([]byte(symptoms), &r.Symptoms); err != nil {
		return Report{}, fmt.Errorf("decoding symptoms of %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(recs), &r.Recommendations); err != nil {
		return Report{}, fmt.Errorf("decoding recommendations of %s: %w", r.ID, err)
	}
	return r, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
