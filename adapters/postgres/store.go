// Package postgres persists search results via sqlx.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gophi/domain/core"
	"gophi/domain/phi"
	"gophi/ports"
)

// Schema creates the results table. Applied idempotently on startup.
const Schema = `
CREATE TABLE IF NOT EXISTS big_mips (
	id         UUID PRIMARY KEY,
	run_id     UUID NOT NULL,
	phi        DOUBLE PRECISION NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS big_mips_run_id_idx ON big_mips (run_id);
`

// resultStore implements the ResultStore interface
type resultStore struct {
	db *sqlx.DB
}

// bigMipRow mirrors one big_mips row as the database hands it back.
type bigMipRow struct {
	ID        string    `db:"id"`
	RunID     string    `db:"run_id"`
	Phi       float64   `db:"phi"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// toRecord converts a raw row into a domain record, parsing the ID
// columns on the way in.
func (r bigMipRow) toRecord() (ports.BigMipRecord, error) {
	id, err := core.ParseResultID(r.ID)
	if err != nil {
		return ports.BigMipRecord{}, fmt.Errorf("bad id column: %w", err)
	}
	runID, err := core.ParseRunID(r.RunID)
	if err != nil {
		return ports.BigMipRecord{}, fmt.Errorf("bad run_id column: %w", err)
	}

	var payload phi.BigMipPayload
	if err := json.Unmarshal(r.Payload, &payload); err != nil {
		return ports.BigMipRecord{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return ports.BigMipRecord{
		ID:        id,
		RunID:     runID,
		Phi:       r.Phi,
		Payload:   payload,
		CreatedAt: core.NewTimestamp(r.CreatedAt),
	}, nil
}

// Open connects to postgres and returns a result store backed by it.
func Open(databaseURL string) (ports.ResultStore, *sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &resultStore{db: db}, db, nil
}

// NewResultStore creates a result store on an existing connection.
func NewResultStore(db *sqlx.DB) ports.ResultStore {
	return &resultStore{db: db}
}

// EnsureSchema applies the results schema.
func (s *resultStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SaveBigMip inserts a persisted result.
func (s *resultStore) SaveBigMip(ctx context.Context, record ports.BigMipRecord) error {
	payloadJSON, err := json.Marshal(record.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `INSERT INTO big_mips (id, run_id, phi, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.RunID, record.Phi, payloadJSON, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save big mip: %w", err)
	}

	return nil
}

// GetBigMip retrieves a result by its ID.
func (s *resultStore) GetBigMip(ctx context.Context, id core.ResultID) (*ports.BigMipRecord, error) {
	query := `SELECT id, run_id, phi, payload, created_at FROM big_mips WHERE id = $1`

	var row bigMipRow
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", core.ErrResultNotFound, id)
		}
		return nil, fmt.Errorf("failed to get big mip: %w", err)
	}

	record, err := row.toRecord()
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListBigMipsByRun retrieves all results of one run, oldest first.
func (s *resultStore) ListBigMipsByRun(ctx context.Context, runID core.RunID) ([]ports.BigMipRecord, error) {
	query := `SELECT id, run_id, phi, payload, created_at
		FROM big_mips WHERE run_id = $1 ORDER BY created_at ASC`

	var rows []bigMipRow
	if err := s.db.SelectContext(ctx, &rows, query, runID); err != nil {
		return nil, fmt.Errorf("failed to query big mips: %w", err)
	}

	records := make([]ports.BigMipRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
