package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lexcrawl/lexcrawl"
)

// Ensure CheckpointStore implements the storage interfaces at compile time.
var (
	_ lexcrawl.CheckpointStore = (*CheckpointStore)(nil)
	_ lexcrawl.Checkpointer    = (*CheckpointStore)(nil)
)

// CheckpointStore persists discovered terms and crawl-run audit rows.
// Term inserts are idempotent (INSERT OR IGNORE keyed by the term
// itself), which makes at-least-once crawl issuance safe to persist.
type CheckpointStore struct {
	db  *DB
	now func() time.Time
}

// NewCheckpointStore creates a CheckpointStore backed by db.
func NewCheckpointStore(db *DB) *CheckpointStore {
	return &CheckpointStore{
		db:  db,
		now: time.Now,
	}
}

// SaveTerms inserts terms, ignoring ones already stored.
// Returns the number of newly inserted terms.
func (s *CheckpointStore) SaveTerms(ctx context.Context, terms []string) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, lexcrawl.Errorf(lexcrawl.EINTERNAL, "begin transaction: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO terms (name, discovered_at) VALUES (?, ?)
	`)
	if err != nil {
		return 0, lexcrawl.Errorf(lexcrawl.EINTERNAL, "prepare insert: %v", err)
	}
	defer stmt.Close()

	discoveredAt := s.now().UTC().Format(time.RFC3339)
	var inserted int
	for _, term := range terms {
		res, err := stmt.ExecContext(ctx, term, discoveredAt)
		if err != nil {
			return 0, lexcrawl.Errorf(lexcrawl.EINTERNAL, "insert term %q: %v", term, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, lexcrawl.Errorf(lexcrawl.EINTERNAL, "commit terms: %v", err)
	}
	return inserted, nil
}

// Terms returns all stored terms in lexical order.
func (s *CheckpointStore) Terms(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM terms ORDER BY name`)
	if err != nil {
		return nil, lexcrawl.Errorf(lexcrawl.EINTERNAL, "query terms: %v", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, lexcrawl.Errorf(lexcrawl.EINTERNAL, "scan term: %v", err)
		}
		terms = append(terms, name)
	}
	if err := rows.Err(); err != nil {
		return nil, lexcrawl.Errorf(lexcrawl.EINTERNAL, "iterate terms: %v", err)
	}
	return terms, nil
}

// SaveRun records the outcome of a crawl run. A missing ID is assigned.
func (s *CheckpointStore) SaveRun(ctx context.Context, run *lexcrawl.RunRecord) error {
	if run.Endpoint == "" {
		return lexcrawl.Errorf(lexcrawl.EINVALID, "run endpoint required")
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, endpoint, started_at, requests, skipped, degraded, terms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Endpoint, s.now().UTC().Format(time.RFC3339), run.Requests, run.Skipped, run.Degraded, run.Terms)
	if err != nil {
		return lexcrawl.Errorf(lexcrawl.EINTERNAL, "save run %q: %v", run.ID, err)
	}
	return nil
}

// Checkpoint implements lexcrawl.Checkpointer by saving the snapshot's
// terms. It allows wiring the store directly as a Checkpointer when
// incremental filtering is not wanted.
func (s *CheckpointStore) Checkpoint(ctx context.Context, terms []string) error {
	_, err := s.SaveTerms(ctx, terms)
	return err
}
