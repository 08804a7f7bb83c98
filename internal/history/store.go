// Package history keeps a SQLite record of evaluated inputs.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hayeah/goo"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Import SQLite driver

	"github.com/hayeah/balsub/balance"
)

var ErrNotFound = errors.New("run not found")

// Run is one stored evaluation.
type Run struct {
	ID        int64     `db:"id"`
	Input     string    `db:"input"`
	Alphabet  string    `db:"alphabet"`
	Length    int       `db:"length"`
	Start     int       `db:"start_pos"`
	End       int       `db:"end_pos"`
	Letters   string    `db:"letters"`
	CreatedAt time.Time `db:"created_at"`
}

func (r Run) Result() balance.Result {
	return balance.Result{
		Length:  r.Length,
		Start:   r.Start,
		End:     r.End,
		Letters: r.Letters,
	}
}

var migrations = []goo.Migration{
	{
		Name: "create_runs_table",
		Up: `
			CREATE TABLE IF NOT EXISTS runs (
				id INTEGER PRIMARY KEY,
				input TEXT NOT NULL,
				alphabet TEXT NOT NULL,
				length INTEGER NOT NULL,
				start_pos INTEGER NOT NULL,
				end_pos INTEGER NOT NULL,
				letters TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			);
		`,
	},
	{
		Name: "index_runs_input",
		Up:   `CREATE INDEX IF NOT EXISTS runs_input ON runs (input, alphabet, id);`,
	},
}

type Store struct {
	DB       *sqlx.DB
	Logger   *slog.Logger
	Migrator *goo.DBMigrator

	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// serialises writers; sqlite allows one at a time anyway
	db.SetMaxOpenConns(1)

	s := &Store{
		DB:       db,
		Logger:   logger,
		Migrator: goo.ProvideDBMigrator(db, logger),
		now:      time.Now,
	}
	if err := s.Migrator.Up(migrations); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Record stores the result of evaluating input and returns the new run ID.
func (s *Store) Record(ctx context.Context, input, alphabet string, r balance.Result) (int64, error) {
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO runs (input, alphabet, length, start_pos, end_pos, letters, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		input, alphabet, r.Length, r.Start, r.End, r.Letters, s.now(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// List returns the most recent runs first. A limit of zero or less returns
// every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	var runs []Run
	err := s.DB.SelectContext(ctx, &runs, "SELECT * FROM runs ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Run, error) {
	var run Run
	err := s.DB.GetContext(ctx, &run, "SELECT * FROM runs WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// Latest returns the newest run of input under the given alphabet.
func (s *Store) Latest(ctx context.Context, input, alphabet string) (*Run, error) {
	var run Run
	err := s.DB.GetContext(ctx, &run,
		"SELECT * FROM runs WHERE input = ? AND alphabet = ? ORDER BY id DESC LIMIT 1",
		input, alphabet,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: input %q", ErrNotFound, input)
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return &run, nil
}
