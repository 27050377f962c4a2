package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

const sequenceTable = "global_sequence"

// sequenceCounter numbers events across both event tables, so a model
// request sorts against the classification it served. The single counter
// row is created by migrate.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(`INSERT OR IGNORE INTO `+sequenceTable+` (id, next_val) VALUES (1, 1)`); err != nil {
		return nil, fmt.Errorf("seed %s: %w", sequenceTable, err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next claims a sequence number. Numbers start at 1 and never repeat until
// Reset.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var claimed int64
	row := sc.db.QueryRowContext(ctx,
		`UPDATE `+sequenceTable+` SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)
	if err := row.Scan(&claimed); err != nil {
		return 0, fmt.Errorf("claim sequence: %w", err)
	}
	return claimed, nil
}

func (sc *sequenceCounter) Reset(ctx context.Context) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	_, err := sc.db.ExecContext(ctx, `UPDATE `+sequenceTable+` SET next_val = 1 WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}
